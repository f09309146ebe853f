package telegram

import (
	"fmt"
	"strings"

	"github.com/bnema/recitebot/internal/domain"
)

// Bot API descriptions returned when Telegram cannot use a remote file.
var unusableMediaMarkers = []string{
	"WEBPAGE_MEDIA_EMPTY",
	"WEBPAGE_CURL_FAILED",
	"failed to get HTTP URL content",
	"wrong file identifier/HTTP URL specified",
	"wrong type of the web page content",
}

func classifySendError(err error) error {
	msg := err.Error()
	for _, marker := range unusableMediaMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("send audio: %w: %w", domain.ErrMediaUnusable, err)
		}
	}
	return fmt.Errorf("send audio: %w", err)
}

func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
