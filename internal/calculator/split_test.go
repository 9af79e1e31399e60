package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name      string
		amount    decimal.Decimal
		members   []string
		wantShare decimal.Decimal
		wantTotal decimal.Decimal
	}{
		{
			name:      "three-way even split",
			amount:    d("30.00"),
			members:   []string{"m1", "m2", "m3"},
			wantShare: d("10.00"),
			wantTotal: d("30.00"),
		},
		{
			name:      "rounding drift stays uncorrected",
			amount:    d("100.00"),
			members:   []string{"m1", "m2", "m3"},
			wantShare: d("33.33"),
			wantTotal: d("99.99"),
		},
		{
			name:      "rounding up overshoots the bill",
			amount:    d("0.05"),
			members:   []string{"m1", "m2"},
			wantShare: d("0.03"),
			wantTotal: d("0.06"),
		},
		{
			name:      "duplicates each get a share",
			amount:    d("9.00"),
			members:   []string{"m1", "m1", "m2"},
			wantShare: d("3.00"),
			wantTotal: d("9.00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := EqualSplit(tt.amount, tt.members)
			if len(shares) != len(tt.members) {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.members))
			}
			for i, s := range shares {
				if s.MemberID != tt.members[i] {
					t.Errorf("share %d member = %s, want %s", i, s.MemberID, tt.members[i])
				}
				if !s.Share.Equal(tt.wantShare) {
					t.Errorf("share %d = %s, want %s", i, s.Share, tt.wantShare)
				}
			}
			if total := SplitTotal(shares); !total.Equal(tt.wantTotal) {
				t.Errorf("total = %s, want %s", total, tt.wantTotal)
			}

			// Sum property: total == share * N and |amount - total| <= (N-1) cents.
			n := int64(len(tt.members))
			if !SplitTotal(shares).Equal(tt.wantShare.Mul(decimal.NewFromInt(n))) {
				t.Errorf("total is not share * %d", n)
			}
			maxDrift := decimal.New(n-1, -2)
			if tt.amount.Sub(SplitTotal(shares)).Abs().GreaterThan(maxDrift) {
				t.Errorf("drift %s exceeds %s", tt.amount.Sub(SplitTotal(shares)), maxDrift)
			}
		})
	}
}

func TestEqualSplit_NoMembers(t *testing.T) {
	if shares := EqualSplit(d("50.00"), nil); len(shares) != 0 {
		t.Errorf("expected no shares, got %d", len(shares))
	}
}
