// Listen to hit records and collect them in the output file

package main

import (
	"github.com/namsral/flag"

	logs "github.com/osallou/fmindex-go-playground/lib/log"
	message "github.com/osallou/fmindex-go-playground/lib/message"
)

var logger = logs.GetLogger("fmi.result")

func main() {
	var uid string
	flag.StringVar(&uid, "uid", "run", "run identifier, same as fmiClient")
	flag.Parse()

	logger.Infof("Listen to results")
	var mngr message.MessageManager
	mngr = &message.MessageResult{}
	mngr.Init(uid, nil)
	mngr.Run()
	mngr.Close()
}
