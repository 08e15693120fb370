package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/slides/internal/auth"
)

// AuthRequired 是认证中间件：未登录时以登录页替换响应，登录表单提交到同一地址。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := a.gate.Authorize(sessions.Default(c), loginAttempt(c))
		if err != nil {
			a.logger.Error("authorize request", "path", c.Request.URL.Path, "error", err)
		}
		if decision == auth.Allow {
			c.Next()
			return
		}

		a.renderHTML(c, http.StatusOK, "login.html", gin.H{
			"title":   "Admin Login",
			"invalid": decision == auth.ChallengeInvalid,
		})
		c.Abort()
	}
}

// Logout 处理登出：任何带 logout 字段的 POST 都会清空会话并跳回原地址。
func (a *API) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if _, ok := c.GetPostForm("logout"); !ok {
			c.Next()
			return
		}

		if err := a.gate.Logout(sessions.Default(c)); err != nil {
			a.logger.Error("logout", "error", err)
		}
		c.Redirect(http.StatusFound, c.Request.URL.RequestURI())
		c.Abort()
	}
}

func loginAttempt(c *gin.Context) auth.Attempt {
	if c.Request.Method != http.MethodPost {
		return auth.Attempt{}
	}
	password, ok := c.GetPostForm("password")
	return auth.Attempt{Submitted: ok, Password: password}
}
