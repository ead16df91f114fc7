package main

import "github.com/tliron/commonlog"

func logger() commonlog.Logger {
	return commonlog.GetLogger("wright.cli")
}
