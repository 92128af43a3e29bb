package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	color.SetEnabled(cfg.Color)

	session := &state.Session{
		Terminal: ui.NewTerminal(os.Stdin, color.Stdout, cfg.Delay),
		Config:   cfg,
	}
	err = state.Run(session)
	if err != nil && !errors.Is(err, consts.ErrorsExist) {
		log.Error(err)
	}
}
