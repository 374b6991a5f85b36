package usecase

import (
	"github.com/xavierca1/aliar-cursos/internal/entity"
)

type Action string

const (
	ActionView   Action = "view"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

const (
	ResourceLeads        = "leads"
	ResourceTrialClasses = "trial classes"
	ResourceFeedbacks    = "feedbacks"
	ResourceCurriculos   = "curriculos"
)

// RequireRole barra quem não tem o papel exigido, antes de qualquer acesso ao banco.
func RequireRole(identity *entity.Identity, role entity.Role, action Action, resource string) error {
	if identity == nil {
		return &UnauthenticatedError{}
	}
	if identity.Role != role {
		return &AuthorizationError{Message: "Only " + string(role) + "s can " + string(action) + " " + resource}
	}
	return nil
}
