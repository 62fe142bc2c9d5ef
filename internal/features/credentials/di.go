package credentials

import (
	"deskstore/internal/cache"
	"deskstore/internal/features/principals"
	cache_utils "deskstore/internal/util/cache"
	"deskstore/internal/util/logger"
)

var credentialRepository = &CredentialRepository{}

var credentialService = &CredentialService{
	credentialRepository: credentialRepository,
	principalService:     principals.GetPrincipalService(),
	credentialCacheUtil:  cache_utils.NewCacheUtil[CachedCredential](cache.GetCache(), "ds_cred:"),
	logger:               logger.GetLogger(),
}

var credentialController = &CredentialController{
	credentialService,
}

func GetCredentialService() *CredentialService {
	return credentialService
}

func GetCredentialController() *CredentialController {
	return credentialController
}
