package captcha

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/verify-captcha/internal/recaptcha"
	"github.com/nao1215/verify-captcha/pkg/middleware"
)

// verifyRequest はCAPTCHA検証リクエストのJSON構造。
type verifyRequest struct {
	// Token はクライアントで取得したreCAPTCHAトークン。
	Token string `json:"token" binding:"required"`
	// Action はトークン発行時に指定したアクション名。指定された場合は検証結果と照合する。
	Action string `json:"action"`
}

// verifyResponse はCAPTCHA検証レスポンスのJSON構造。
type verifyResponse struct {
	// Success は検証（およびデータ取得）に成功したかどうか。
	Success bool `json:"success"`
	// Message は結果を表すメッセージ。
	Message string `json:"message"`
	// Data は検証成功時に付加するデータ。
	Data any `json:"data,omitempty"`
	// Score はreCAPTCHA v3のスコア。
	Score *float64 `json:"score,omitempty"`
}

// handleVerify はCAPTCHAトークンを検証するハンドラを返す。
func (s *Server) handleVerify() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := middleware.GetRequestID(c)

		if s.configErr != nil {
			log.Printf("[Captcha] 設定エラー: request_id=%s, error=%v", requestID, s.configErr)
			c.JSON(http.StatusInternalServerError, verifyResponse{Message: msgConfigurationError})
			return
		}

		var req verifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, verifyResponse{Message: msgTokenRequired})
			return
		}

		result, err := s.verifier.Verify(c.Request.Context(), req.Token, c.ClientIP())
		if err != nil {
			log.Printf("[Captcha] トークン検証エラー: request_id=%s, error=%v", requestID, err)
			c.JSON(http.StatusInternalServerError, verifyResponse{Message: msgInternalError})
			return
		}

		decision := recaptcha.Evaluate(result, req.Action)
		if !decision.Passed() {
			s.logRejection(requestID, decision, result, req.Action)
			c.JSON(http.StatusBadRequest, verifyResponse{
				Message: rejectionMessage(decision.Outcome),
				Score:   decision.Score,
			})
			return
		}

		resp := verifyResponse{
			Success: true,
			Message: msgVerified,
			Score:   decision.Score,
		}
		if s.enricher != nil {
			data, err := s.enricher.Enrich(c.Request.Context())
			if err != nil {
				log.Printf("[Captcha] 予約データの取得に失敗: request_id=%s, error=%v", requestID, err)
				c.JSON(http.StatusInternalServerError, verifyResponse{Message: msgEnrichmentFailed})
				return
			}
			resp.Data = data
		}

		c.JSON(http.StatusOK, resp)
	}
}

// rejectionMessage は拒否理由に対応するメッセージを返す。
func rejectionMessage(o recaptcha.Outcome) string {
	switch o {
	case recaptcha.OutcomeServiceError:
		return msgServiceError
	case recaptcha.OutcomeLowScore:
		return msgLowScore
	case recaptcha.OutcomeActionMismatch:
		return msgActionMismatch
	default:
		return msgRejected
	}
}

// logRejection は検証失敗の詳細をログに出力する。
// エラーコードはレスポンスに含めず、ここでのみ記録する。
func (s *Server) logRejection(requestID string, d recaptcha.Decision, r *recaptcha.Result, expectedAction string) {
	switch d.Outcome {
	case recaptcha.OutcomeServiceError:
		log.Printf("[Captcha] reCAPTCHAエラー: request_id=%s, error_codes=%v", requestID, r.ErrorCodes)
	case recaptcha.OutcomeLowScore:
		log.Printf("[Captcha] スコアが閾値未満: request_id=%s, score=%.2f, hostname=%s", requestID, *d.Score, r.Hostname)
	case recaptcha.OutcomeActionMismatch:
		log.Printf("[Captcha] アクション不一致: request_id=%s, expected=%q, actual=%q", requestID, expectedAction, r.Action)
	default:
		log.Printf("[Captcha] 検証失敗: request_id=%s, outcome=%s, hostname=%s, challenge_ts=%s", requestID, d.Outcome, hostname(r), challengeTS(r))
	}
}

func hostname(r *recaptcha.Result) string {
	if r == nil {
		return ""
	}
	return r.Hostname
}

func challengeTS(r *recaptcha.Result) string {
	if r == nil {
		return ""
	}
	return r.ChallengeTS
}
