package mapping

import (
	"github.com/VyankateshKulkarni06/E-Rupee/internal/core/domain"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID: d.PaymentID,
		Sender:    d.Sender,
		Receiver:  d.Receiver,
		Amount:    d.Amount,
		DoneAt:    d.DoneAt,
		Stage:     models.PaymentStage(d.Stage),
		Status:    models.PaymentStatus(d.Status),
		Kind:      models.PaymentKind(d.Kind),
		GrantID:   d.GrantID,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Amount:    m.Amount,
		DoneAt:    m.DoneAt,
		Stage:     domain.PaymentStage(m.Stage),
		Status:    domain.PaymentStatus(m.Status),
		Kind:      domain.PaymentKind(m.Kind),
		GrantID:   m.GrantID,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
