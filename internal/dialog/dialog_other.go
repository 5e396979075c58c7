//go:build !linux && !windows

package dialog

import "errors"

type noService struct{}

func platformService() Service {
	dlgLog.Warn().Msg("file and color pickers are not supported on this platform")
	return noService{}
}

func (noService) PickImage() (string, bool, error) {
	return "", false, errors.New("pickers are not supported on this platform")
}

func (noService) PickColor(uint32) (uint32, bool, error) {
	return 0, false, errors.New("pickers are not supported on this platform")
}
