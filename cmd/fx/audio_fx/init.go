package audio_fx

import (
	"herhzzz/internal/api/controllers"
	"herhzzz/internal/repositories"
	"herhzzz/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAudioRepo, provideAudioAccessService, provideAudioController)

func provideAudioRepo(db *gorm.DB) repositories.AudioRepository {
	return repositories.NewAudioRepository(db)
}

func provideAudioAccessService(
	audioRepo repositories.AudioRepository,
	membershipRepo repositories.MembershipRepository) services.AudioAccessServiceInterface {
	return services.NewAudioAccessService(audioRepo, membershipRepo)
}

func provideAudioController(audioAccessService services.AudioAccessServiceInterface) *controllers.AudioController {
	return controllers.NewAudioController(audioAccessService)
}
