package captcha

// 呼び出し元に返すメッセージ。内部のエラー詳細は含めない。
const (
	msgConfigurationError = "Server configuration error"
	msgTokenRequired      = "CAPTCHA token is required"
	msgServiceError       = "CAPTCHA verification failed due to configuration error"
	msgLowScore           = "CAPTCHA verification failed - suspicious activity detected"
	msgActionMismatch     = "CAPTCHA action mismatch"
	msgRejected           = "CAPTCHA verification failed"
	msgVerified           = "CAPTCHA verified successfully"
	msgEnrichmentFailed   = "Failed to fetch booking data"
	msgInternalError      = "Internal server error during CAPTCHA verification"
)
