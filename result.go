package cachecheck

// Result is the outcome of one check. Message is always set.
type Result struct {
	Success bool
	Message string
}

func succeeded(msg string) Result { return Result{Success: true, Message: msg} }
func failed(msg string) Result    { return Result{Success: false, Message: msg} }
