package debugs

import (
	"github.com/reusee/dscope"
	"github.com/zasmio/zasm/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
