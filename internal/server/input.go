package server

import (
	"net/url"
	"strings"

	"mvdan.cc/xurls/v2"
)

type SummarizeRequest struct {
	Text    string `json:"text"`
	URL     string `json:"url"`
	Context string `json:"context"`
}

type inputKind int

const (
	inputEmpty inputKind = iota
	inputMock
	inputURL
	inputText
)

// mockSentinel short-circuits all external calls so the UI can be exercised
// without consuming API quota.
const mockSentinel = "DEBUG_MOCK"

var strictURLRe = xurls.Strict()

// resolveInput applies the branch order mock → url → text → empty. The first
// match wins, so a non-blank URL outranks explicitly supplied text.
func resolveInput(req *SummarizeRequest) (inputKind, string) {
	if req == nil {
		return inputEmpty, ""
	}

	if req.Text == mockSentinel {
		return inputMock, ""
	}

	if pageURL := strings.TrimSpace(req.URL); pageURL != "" {
		return inputURL, pageURL
	}

	if strings.TrimSpace(req.Text) != "" {
		return inputText, req.Text
	}

	return inputEmpty, ""
}

// normalizeURL accepts only absolute http(s) URLs.
func normalizeURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}

	if strictURLRe.FindString(raw) != raw {
		return "", false
	}

	return raw, true
}
