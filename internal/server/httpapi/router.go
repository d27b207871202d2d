package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Algo-jtx/SoulSpace/internal/logging"
	"github.com/Algo-jtx/SoulSpace/internal/server/services"
)

// Services bundles everything the router serves.
type Services struct {
	Users    *services.UserService
	Letters  *services.LetterService
	Capsules *services.CapsuleService
	Notes    *services.NoteService
	Wellness *services.WellnessService
}

// NewRouter builds the gin engine with all SoulSpace routes registered.
func NewRouter(svcs Services, secretKey []byte, sessionTTL time.Duration, log logging.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(RequestLogger(log), Recovery(log))

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>SoulSpace API</h1>"))
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	authHandler := NewAuthHandler(svcs.Users, secretKey, sessionTTL, log)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/check_session", authHandler.CheckSession)
	r.DELETE("/logout", authHandler.Logout)

	protected := r.Group("", RequireSession(secretKey))

	letters := NewLetterHandler(svcs.Letters)
	protected.GET("/letters", letters.List)
	protected.POST("/letters", letters.Create)
	protected.GET("/letters/:id", letters.Get)
	protected.PATCH("/letters/:id", letters.Update)
	protected.DELETE("/letters/:id", letters.Delete)

	capsules := NewCapsuleHandler(svcs.Capsules)
	protected.GET("/time_capsules", capsules.List)
	protected.POST("/time_capsules", capsules.Create)
	protected.GET("/time_capsules/:id", capsules.Get)
	protected.PATCH("/time_capsules/:id", capsules.Update)
	protected.DELETE("/time_capsules/:id", capsules.Delete)

	notes := NewNoteHandler(svcs.Notes)
	protected.GET("/user_notes", notes.List)
	protected.POST("/user_notes", notes.Create)
	protected.GET("/user_notes/:id", notes.Get)
	protected.PATCH("/user_notes/:id", notes.Update)
	protected.DELETE("/user_notes/:id", notes.Delete)

	wellness := NewWellnessHandler(svcs.Wellness)
	protected.GET("/soul_notes/random", wellness.RandomSoulNote)
	protected.GET("/loop_breaker/prompt", wellness.LoopPrompt)
	protected.GET("/breath_ground", wellness.Techniques)

	return r
}
