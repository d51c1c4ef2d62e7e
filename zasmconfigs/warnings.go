package zasmconfigs

import (
	"strings"

	"github.com/zasmio/zasm/cmds"
	"github.com/zasmio/zasm/configs"
)

// Warnings maps warning class names to enabled/disabled. Classes absent
// from the map keep their default.
type Warnings map[string]bool

// -w +class / -w -class, same shape as the config file entries
var warnFlags = cmds.Collect[string]("-w")

func (Module) Warnings(
	loader configs.Loader,
) Warnings {
	warnings := make(Warnings)

	// config file
	for name, enabled := range configs.First[map[string]bool](loader, "warnings") {
		warnings[name] = enabled
	}

	// flags override the config
	for _, flag := range *warnFlags {
		switch {
		case strings.HasPrefix(flag, "+"):
			warnings[flag[1:]] = true
		case strings.HasPrefix(flag, "-"):
			warnings[flag[1:]] = false
		default:
			warnings[flag] = true
		}
	}

	return warnings
}
