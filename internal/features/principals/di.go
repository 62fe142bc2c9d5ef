package principals

import (
	"deskstore/internal/util/logger"
)

var principalRepository = &PrincipalRepository{}

var principalService = &PrincipalService{
	principalRepository,
	logger.GetLogger(),
}

var principalController = &PrincipalController{
	principalService,
}

func GetPrincipalService() *PrincipalService {
	return principalService
}

func GetPrincipalController() *PrincipalController {
	return principalController
}
