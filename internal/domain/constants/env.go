package constants

// Values of env.env that mark a non-production deployment.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)
