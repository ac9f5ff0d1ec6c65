package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrContentDirRequired     = runtimeconfig.ErrContentDirRequired
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrRoutesGroupRequired    = runtimeconfig.ErrRoutesGroupRequired
	ErrDefaultLimitInvalid    = runtimeconfig.ErrDefaultLimitInvalid
)

type (
	Config               = runtimeconfig.Config
	ContentConfig        = runtimeconfig.ContentConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	IndexConfig          = runtimeconfig.IndexConfig
	RoutesConfig         = runtimeconfig.RoutesConfig
	URLKitResolverConfig = runtimeconfig.URLKitResolverConfig
	Features             = runtimeconfig.Features
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
