package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCartAdd(t *testing.T) {
	c := Cart{}

	t.Run("first add inserts quantity 1 with snapshot", func(t *testing.T) {
		c.Add("p1", "Sweater", price("10.00"), "/img/p1.png")
		it := c["p1"]
		if it.Quantity != 1 || !it.UnitPrice.Equal(price("10.00")) || it.Name != "Sweater" {
			t.Fatalf("unexpected entry: %+v", it)
		}
	})

	t.Run("second add increments but keeps the snapshot", func(t *testing.T) {
		c.Add("p1", "Renamed", price("99.00"), "")
		it := c["p1"]
		if it.Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", it.Quantity)
		}
		if !it.UnitPrice.Equal(price("10.00")) || it.Name != "Sweater" {
			t.Fatalf("snapshot must not change on re-add: %+v", it)
		}
	})
}

func TestCartIncreaseDecrease(t *testing.T) {
	t.Run("increase absent is a no-op", func(t *testing.T) {
		c := Cart{}
		c.Increase("ghost")
		if len(c) != 0 {
			t.Fatalf("expected empty cart, got %v", c)
		}
	})

	t.Run("decrease above 1 subtracts", func(t *testing.T) {
		c := Cart{"p1": {Name: "x", UnitPrice: price("5.00"), Quantity: 3}}
		c.Decrease("p1")
		if got := c["p1"].Quantity; got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	})

	t.Run("decrease at 1 removes the entry", func(t *testing.T) {
		c := Cart{"p1": {Name: "x", UnitPrice: price("5.00"), Quantity: 1}}
		c.Decrease("p1")
		if _, ok := c["p1"]; ok {
			t.Fatal("entry should have been removed")
		}
	})

	t.Run("decrease absent is a no-op", func(t *testing.T) {
		c := Cart{"p1": {Name: "x", UnitPrice: price("5.00"), Quantity: 1}}
		c.Decrease("ghost")
		if len(c) != 1 {
			t.Fatalf("cart changed unexpectedly: %v", c)
		}
	})
}

func TestCartLinesAndTotal(t *testing.T) {
	c := Cart{
		"p1": {Name: "a", UnitPrice: price("10.00"), Quantity: 2},
		"p2": {Name: "b", UnitPrice: price("5.00"), Quantity: 1},
	}

	lines, malformed := c.Lines()
	if len(malformed) != 0 {
		t.Fatalf("unexpected malformed entries: %v", malformed)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !lines[0].Subtotal.Equal(price("20.00")) {
		t.Fatalf("expected subtotal 20.00, got %s", lines[0].Subtotal)
	}
	if !c.Total().Equal(price("25.00")) {
		t.Fatalf("expected total 25.00, got %s", c.Total())
	}

	// Totals are recomputed, not cached.
	c.Increase("p2")
	if !c.Total().Equal(price("30.00")) {
		t.Fatalf("expected total 30.00 after increase, got %s", c.Total())
	}
}

func TestCartLinesSkipMalformed(t *testing.T) {
	c := Cart{
		"good": {Name: "a", UnitPrice: price("10.00"), Quantity: 1},
		"bad1": {Name: "b", UnitPrice: price("5.00"), Quantity: 0},
		"bad2": {Name: "c", UnitPrice: price("-1.00"), Quantity: 2},
	}

	lines, malformed := c.Lines()
	if len(lines) != 1 || lines[0].ProductID != "good" {
		t.Fatalf("expected only the good line, got %+v", lines)
	}
	if len(malformed) != 2 {
		t.Fatalf("expected 2 malformed ids, got %v", malformed)
	}
	if !c.Total().Equal(price("10.00")) {
		t.Fatalf("malformed entries must not count toward the total, got %s", c.Total())
	}
}
