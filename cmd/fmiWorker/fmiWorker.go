// Listen to search jobs and run them against the index

package main

import (
	"github.com/namsral/flag"

	logs "github.com/osallou/fmindex-go-playground/lib/log"
	message "github.com/osallou/fmindex-go-playground/lib/message"
	"github.com/osallou/fmindex-go-playground/lib/utils"
)

var logger = logs.GetLogger("fmi.worker")

func main() {
	var uid string
	flag.StringVar(&uid, "uid", "run", "run identifier, same as fmiClient")
	flag.Parse()

	logger.Infof("Version: %s, build: %s, hash: %s", utils.Version, utils.Buildstamp, utils.Githash)
	logger.Infof("Listen to search jobs")
	var mngr message.MessageManager
	mngr = &message.MessageSearch{}
	mngr.Init(uid, nil)
	mngr.Run()
	mngr.Close()
}
