package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BG-legacy/TimeWell/internal/voice"
)

// ListVoiceStyles enumerates every coaching persona with its description.
func ListVoiceStyles(c *gin.Context) {
	RespondOK(c, gin.H{"voice_styles": voice.Styles(), "default": string(voice.DefaultStyle)})
}
