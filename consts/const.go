package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	AuthTimeout = 3 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist         = NewErr(1, true, "Exist. ")
	ErrorsChanClosed    = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout       = NewErr(1, true, "Timeout. ")
	ErrorsAuthFail      = NewErr(1, true, "Auth fail. ")
	ErrorsGameAborted   = NewErr(2, true, "Game aborted. ")
	ErrorsConfigInvalid = NewErr(3, true, "Config invalid. ")
)
