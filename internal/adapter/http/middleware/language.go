package middleware

import (
	"bussola/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware stores the Accept-Language header for the handlers. The
// raw value is kept since the localizer understands quality lists.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.DefaultLanguage
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.DefaultLanguage
}
