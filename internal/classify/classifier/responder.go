package classifier

import (
	"mailclassifier-backend/internal/classify/domain"
)

const (
	productiveReply = "Olá! Obrigado pelo contato. " +
		"Recebemos sua mensagem e vamos prosseguir com os próximos passos. " +
		"Pode me indicar datas/horários disponíveis para alinharmos?"

	unproductiveReply = "Olá! Obrigado pela mensagem. " +
		"No momento, não temos interesse/necessidade. " +
		"Caso algo mude, entraremos em contato."
)

// Responder maps a classification result to a canned reply template. The
// selection is keyed only on the category; no side effects, no failure modes.
type Responder struct{}

func NewResponder() *Responder {
	return &Responder{}
}

func (r *Responder) Suggest(result domain.ClassificationResult, _ domain.Email) string {
	if result.Category == domain.CategoryProductive {
		return productiveReply
	}
	return unproductiveReply
}
