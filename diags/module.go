package diags

import (
	"github.com/reusee/dscope"
	"github.com/zasmio/zasm/logs"
	"github.com/zasmio/zasm/zasmconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs zasmconfigs.Module
}
