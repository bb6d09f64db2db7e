package httpx

// SafeErrMsg renders an error for a client-facing payload, tolerating nil.
func SafeErrMsg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
