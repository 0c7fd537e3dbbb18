package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/lifestyleapp/internal/image"
	"github.com/youruser/lifestyleapp/internal/section"
)

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type warningJSON struct {
	Kind     string `json:"kind"`
	Position string `json:"position,omitempty"`
	Error    string `json:"error"`
}

// composeHandler renders a request body of the form
// {"title", "sections": [{"position", "caption", "image"}], "footer_qr"}
// and saves it under the next auto-numbered name. Callers cannot pick the
// output path. Concurrent requests can be handed the same name, as with
// NextOutputPath.
func composeHandler(comp *imagepkg.Compositor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req section.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Output = ""
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := comp.Compose(req)
		if err != nil {
			log.Println("compose error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		warnings := make([]warningJSON, 0, len(res.Warnings))
		for _, w := range res.Warnings {
			warnings = append(warnings, warningJSON{
				Kind:     string(w.Kind),
				Position: w.Position,
				Error:    w.Err.Error(),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"path":     res.Path,
			"lines":    res.Lines,
			"warnings": warnings,
		})
	}
}
