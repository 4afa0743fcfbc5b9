package oauth

import (
	"fmt"
	"net/http"

	"github.com/skillswap/skillswap-cli/internal/utils/api"
)

const (
	pageSuccess = "All set! You can close this window and return to your terminal."
	pageFailure = "Something went wrong. Close this window and check your terminal for details."
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head><title>SkillSwap</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h2>SkillSwap</h2>
<p>%s</p>
</body>
</html>
`

func writePage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set(api.HeaderContentType, api.MediaTypeHTML)
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, pageTemplate, message)
}
