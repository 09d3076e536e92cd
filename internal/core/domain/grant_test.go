package domain_test

import (
	"testing"

	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtraGrant_IsOpen(t *testing.T) {
	tests := []struct {
		name  string
		grant domain.ExtraGrant
		want  bool
	}{
		{
			name:  "open grant",
			grant: domain.ExtraGrant{Status: domain.GrantOpen},
			want:  true,
		},
		{
			name:  "exhausted grant",
			grant: domain.ExtraGrant{Status: domain.GrantExhausted},
			want:  false,
		},
		{
			name:  "rejected grant",
			grant: domain.ExtraGrant{Status: domain.GrantRejected},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.grant.IsOpen())
		})
	}
}

func TestExtraGrant_CanCover(t *testing.T) {
	grant := domain.ExtraGrant{Remaining: decimal.NewFromInt(200)}

	tests := []struct {
		name   string
		amount decimal.Decimal
		want   bool
	}{
		{
			name:   "amount below remainder",
			amount: decimal.NewFromInt(150),
			want:   true,
		},
		{
			name:   "amount equal to remainder",
			amount: decimal.NewFromInt(200),
			want:   true,
		},
		{
			name:   "amount above remainder",
			amount: decimal.NewFromInt(201),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grant.CanCover(tt.amount))
		})
	}
}

func TestApprovalRequest_IsPending(t *testing.T) {
	tests := []struct {
		name    string
		request domain.ApprovalRequest
		want    bool
	}{
		{
			name:    "pending request",
			request: domain.ApprovalRequest{Status: domain.ApprovalPending},
			want:    true,
		},
		{
			name:    "approved request",
			request: domain.ApprovalRequest{Status: domain.ApprovalApproved},
			want:    false,
		},
		{
			name:    "rejected request",
			request: domain.ApprovalRequest{Status: domain.ApprovalRejected},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.request.IsPending())
		})
	}
}
