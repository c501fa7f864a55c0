package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/temirov/summarize/internal/types"
	"github.com/temirov/summarize/internal/utils"
)

const (
	// EnvironmentPrefix prefixes environment variables mirroring the flags.
	EnvironmentPrefix = "SUMMARIZE"

	FolderFlagName     = "folder"
	ExtensionsFlagName = "exts"
	FilesFlagName      = "files"
	IgnoreFlagName     = "ignore"
	DepthFlagName      = "depth"
	ClipboardFlagName  = "clipboard"

	pathListSeparator    = ","
	errorBindFlagsFormat = "bind flags: %w"
	errorDepthFormat     = "%w: --%s must be at least 1, got %d"
)

// ResolveInvocation reads every flag of flagSet through viper so that each one
// may also be supplied as SUMMARIZE_<NAME> in the environment. A flag set on
// the command line wins over the environment, which wins over the flag default.
func ResolveInvocation(flagSet *pflag.FlagSet) (types.InvocationArgs, error) {
	reader := viper.New()
	reader.SetEnvPrefix(EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	reader.AutomaticEnv()
	if bindError := reader.BindPFlags(flagSet); bindError != nil {
		return types.InvocationArgs{}, fmt.Errorf(errorBindFlagsFormat, bindError)
	}

	arguments := types.InvocationArgs{
		Folder:          strings.TrimSpace(reader.GetString(FolderFlagName)),
		Extensions:      utils.ParseExtensions(reader.GetString(ExtensionsFlagName)),
		Files:           cleanPathList(reader.GetStringSlice(FilesFlagName)),
		IgnoreFilePath:  strings.TrimSpace(reader.GetString(IgnoreFlagName)),
		MaximumDepth:    reader.GetInt(DepthFlagName),
		CopyToClipboard: reader.GetBool(ClipboardFlagName),
	}
	if arguments.MaximumDepth < 1 {
		return types.InvocationArgs{}, fmt.Errorf(errorDepthFormat, types.ErrUsage, DepthFlagName, arguments.MaximumDepth)
	}
	return arguments, nil
}

// cleanPathList splits every item on commas, trims each path and drops blanks
// while keeping the given order. Flag values arrive already split by pflag;
// environment values arrive as one string per whitespace-separated word.
func cleanPathList(rawPaths []string) []string {
	var paths []string
	for _, rawPath := range rawPaths {
		for _, item := range strings.Split(rawPath, pathListSeparator) {
			trimmedPath := strings.TrimSpace(item)
			if trimmedPath == "" {
				continue
			}
			paths = append(paths, trimmedPath)
		}
	}
	return paths
}
