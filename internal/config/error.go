package config

import (
	"os"

	"github.com/ImSingee/go-ex/ee"
)

var ErrNotExist = os.ErrNotExist

var ErrUnknownProfile = ee.New("unknown profile")

func IsNotExist(err error) bool {
	return ee.Is(err, ErrNotExist)
}
