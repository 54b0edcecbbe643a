package works

import (
	"gallery-app/internal/api/apiutil"
	"gallery-app/internal/domain/works"
	"gallery-app/internal/repository"

	"github.com/gin-gonic/gin"
)

// artworkFilter reads ?category= and ?featured=.
func artworkFilter(c *gin.Context) (repository.ArtworkFilter, error) {
	var f repository.ArtworkFilter

	category, err := apiutil.EnumQuery(c, "category", works.Categories)
	if err != nil {
		return f, err
	}
	featured, err := apiutil.BoolQuery(c, "featured")
	if err != nil {
		return f, err
	}

	f.Category = category
	f.Featured = featured
	return f, nil
}
