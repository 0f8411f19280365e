package productcontroller

import (
	"log"
	"net/http"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// UploadProductImage accepts a multipart "image" file, pushes it to
// Cloudinary and returns the hosted URL for inclusion in a product's images
// list.
func UploadProductImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			web.Fail(c, http.StatusBadRequest, "Image file is required")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to read uploaded image")
			return
		}
		defer file.Close()

		cloudURL := os.Getenv("CLOUDINARY_URL")
		if cloudURL == "" {
			web.Fail(c, http.StatusInternalServerError, "Image uploads are not configured")
			return
		}
		cld, err := cloudinary.NewFromURL(cloudURL)
		if err != nil {
			log.Printf("❌ Cloudinary init failed: %v", err)
			web.Fail(c, http.StatusInternalServerError, "Failed to initialise image uploader")
			return
		}

		result, err := cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{Folder: "products"})
		if err != nil {
			log.Printf("❌ Image upload failed: %v", err)
			web.Fail(c, http.StatusInternalServerError, "Image upload failed")
			return
		}
		web.OK(c, http.StatusOK, gin.H{"url": result.SecureURL, "publicId": result.PublicID})
	}
}
