package entities

import "testing"

func TestFRCSnapshot_RecomputeTotals(t *testing.T) {
	snap := FRCSnapshot{Lines: []FRCLine{
		{Category: "panel", Decision: FRCDecisionAgree, ActualTotal: 100},
		{Category: "panel", Decision: FRCDecisionAdjust, ActualTotal: 80},
		{Category: "paint", Decision: FRCDecisionPending, QuotedTotal: 50},
		{Category: "paint", Decision: FRCDecisionDeclined, QuotedTotal: 40},
		// Removed pair: original plus its negative counterpart.
		{Category: "trim", Decision: FRCDecisionRemoved, ActualTotal: 30},
		{Category: "trim", Decision: FRCDecisionRemoved, ActualTotal: -30},
	}}
	snap.RecomputeTotals()

	if snap.GrandTotal != 180 {
		t.Fatalf("expected grand total 180, got %v", snap.GrandTotal)
	}
	if snap.SubtotalByCategory["panel"] != 180 {
		t.Fatalf("expected panel subtotal 180, got %v", snap.SubtotalByCategory["panel"])
	}
	if snap.SubtotalByCategory["trim"] != 0 {
		t.Fatalf("removed pair must net to zero, got %v", snap.SubtotalByCategory["trim"])
	}
	if _, ok := snap.SubtotalByCategory["paint"]; ok {
		t.Fatalf("pending and declined lines must not contribute a subtotal")
	}
}

func TestFRCSnapshot_ProvisionalTotal(t *testing.T) {
	snap := FRCSnapshot{Lines: []FRCLine{
		{Decision: FRCDecisionAgree, ActualTotal: 100},
		{Decision: FRCDecisionPending, QuotedTotal: 50},
		{Decision: FRCDecisionDeclined, QuotedTotal: 999},
	}}
	snap.RecomputeTotals()

	if got := snap.ProvisionalTotal(); got != 150 {
		t.Fatalf("expected provisional total 150, got %v", got)
	}
}

func TestFRCDecision_AutoDecided(t *testing.T) {
	if !FRCDecisionRemoved.AutoDecided() || !FRCDecisionDeclined.AutoDecided() {
		t.Fatalf("removed and declined are merge-assigned")
	}
	if FRCDecisionAgree.AutoDecided() || FRCDecisionAdjust.AutoDecided() || FRCDecisionPending.AutoDecided() {
		t.Fatalf("pending, agree and adjust are engineer decisions")
	}
}

func TestMoneyBreakdown(t *testing.T) {
	m := MoneyBreakdown{PartsNett: 10, PartsMarkedUp: 12, LabourNett: 20, LabourMarkedUp: 25, PaintNett: 5, PaintMarkedUp: 8}

	if m.Total() != 45 {
		t.Fatalf("total is the marked-up sum, got %v", m.Total())
	}

	n := m.Negate()
	if n.PartsMarkedUp != -12 || n.LabourNett != -20 || n.PaintMarkedUp != -8 {
		t.Fatalf("negate must flip every amount: %+v", n)
	}
	if m.Total()+n.Total() != 0 {
		t.Fatalf("a line and its negation must net to zero")
	}
}
