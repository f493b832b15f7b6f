package speech

import "errors"

var (
	ErrUnknownVoice = errors.New("unknown narrator voice")
	ErrSynthesis    = errors.New("speech synthesis failed")
	ErrTimeout      = errors.New("speech synthesis timed out")
)
