package server

// Client-facing messages. 400/429 texts are specific enough to guide
// correction; 500 texts stay generic so that internal detail is only logged.
const (
	msgMock          = "This is a mock response."
	msgMockProcessed = "これはモック（偽の）応答です。API制限を消費せずに開発を続けるために使用します。UIの動作確認にご利用ください。"

	msgDataProcessed = "AIによってデータが処理されました。"

	msgBadRequest     = "リクエストの形式が正しくありません。"
	msgMissingInput   = "要約するテキストまたはURLを入力してください。"
	msgBadURL         = "URLの形式が正しくありません。"
	msgEmptyArticle   = "URLから本文を抽出できませんでした。記事形式のページでない可能性があります。"
	msgExtractFailed  = "URLの処理中に予期せぬエラーが発生しました。"
	msgRateLimited    = "APIの利用回数制限に達しました。時間をおいてから再度お試しください。"
	msgProviderFailed = "AIサービスとの通信中にエラーが発生しました。"
	msgHistoryFailed  = "履歴の取得中にエラーが発生しました。"

	msgNoAPIKey = "OpenRouter API key is not configured on the server."
)
