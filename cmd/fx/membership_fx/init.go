package membership_fx

import (
	"herhzzz/internal/api/controllers"
	"herhzzz/internal/repositories"
	"herhzzz/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideMembershipRepo, provideMembershipService, provideMembershipController)

func provideMembershipRepo(db *gorm.DB) repositories.MembershipRepository {
	return repositories.NewMembershipRepository(db)
}

func provideMembershipService(membershipRepo repositories.MembershipRepository) services.MembershipServiceInterface {
	return services.NewMembershipService(membershipRepo)
}

func provideMembershipController(membershipService services.MembershipServiceInterface) *controllers.MembershipController {
	return controllers.NewMembershipController(membershipService)
}
