package mapping

import (
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/models"
)

// ToDomainGrant converts a model ExtraBalance to a domain ExtraGrant
func ToDomainGrant(m models.ExtraBalance) domain.ExtraGrant {
	return domain.ExtraGrant{
		GrantID:   m.GrantID,
		Funder:    m.Funder,
		Holder:    m.Holder,
		Remaining: m.Remaining,
		Purpose:   m.Purpose,
		Status:    domain.GrantStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainGrantSlice converts a slice of model ExtraBalances to domain ExtraGrants
func ToDomainGrantSlice(ms []models.ExtraBalance) []domain.ExtraGrant {
	ds := make([]domain.ExtraGrant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGrant(m)
	}
	return ds
}

// ToDomainApproval converts a model PendingRequest to a domain ApprovalRequest
func ToDomainApproval(m models.PendingRequest) domain.ApprovalRequest {
	return domain.ApprovalRequest{
		RequestID:   m.RequestID,
		Requester:   m.Requester,
		Receiver:    m.Receiver,
		Funder:      m.Funder,
		Amount:      m.Amount,
		Purpose:     m.Purpose,
		Status:      domain.ApprovalStatus(m.Status),
		GrantID:     m.GrantID,
		RequestedAt: m.RequestedAt,
	}
}

// ToDomainApprovalSlice converts a slice of model PendingRequests to domain ApprovalRequests
func ToDomainApprovalSlice(ms []models.PendingRequest) []domain.ApprovalRequest {
	ds := make([]domain.ApprovalRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApproval(m)
	}
	return ds
}
