package recaptcha

// MinScore は人間による操作とみなすスコアの下限。これ未満は不審な操作として拒否する。
const MinScore = 0.5

// Outcome は検証結果の判定区分。
type Outcome int

const (
	// OutcomeVerified は検証に成功したことを表す。
	OutcomeVerified Outcome = iota
	// OutcomeServiceError は検証サービスがエラーコードを返したことを表す。
	OutcomeServiceError
	// OutcomeLowScore はスコアがMinScore未満であったことを表す。
	OutcomeLowScore
	// OutcomeActionMismatch は報告されたアクションが要求と一致しなかったことを表す。
	OutcomeActionMismatch
	// OutcomeRejected は検証サービスがsuccess=falseを返したことを表す。
	OutcomeRejected
)

// String は判定区分の名前を返す。ログ出力に使用する。
func (o Outcome) String() string {
	switch o {
	case OutcomeVerified:
		return "verified"
	case OutcomeServiceError:
		return "service_error"
	case OutcomeLowScore:
		return "low_score"
	case OutcomeActionMismatch:
		return "action_mismatch"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Decision は検証結果の評価結果。
type Decision struct {
	// Outcome は判定区分。
	Outcome Outcome
	// Score は呼び出し元に返すスコア。OutcomeVerifiedとOutcomeLowScoreでのみ設定される。
	Score *float64
}

// Passed は検証に成功したかどうかを返す。
func (d Decision) Passed() bool {
	return d.Outcome == OutcomeVerified
}

// Evaluate は検証結果を判定ポリシーに照らして評価する。
// 判定は次の順序で行い、最初に該当した規則の結果を返す。
//
//  1. エラーコードが1つ以上ある
//  2. スコアがあり、MinScore未満である
//  3. expectedActionが指定され、報告されたアクションと一致しない
//  4. successがtrueではない
//
// いずれにも該当しない場合は検証成功とする。
func Evaluate(r *Result, expectedAction string) Decision {
	if r == nil {
		return Decision{Outcome: OutcomeRejected}
	}
	if len(r.ErrorCodes) > 0 {
		return Decision{Outcome: OutcomeServiceError}
	}
	if r.Score != nil && *r.Score < MinScore {
		return Decision{Outcome: OutcomeLowScore, Score: r.Score}
	}
	if expectedAction != "" && r.Action != expectedAction {
		return Decision{Outcome: OutcomeActionMismatch}
	}
	if !r.Success {
		return Decision{Outcome: OutcomeRejected}
	}
	return Decision{Outcome: OutcomeVerified, Score: r.Score}
}
