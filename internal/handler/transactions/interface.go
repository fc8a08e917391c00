package transactions

import "github.com/gin-gonic/gin"

type IHandler interface {
	Fetch(c *gin.Context)
	List(c *gin.Context)
}
