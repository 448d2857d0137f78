package uploads

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"mercato/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const productPicDir = "./static/productpic"

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadImage stores a product image and a 300px wide thumbnail under
// static/productpic, returning both URLs. Admin only.
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if !supportedImageTypes[header.Header.Get("Content-Type")] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF.")
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		log.Println("UploadImage decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Could not decode image")
		return
	}

	if err := os.MkdirAll(productPicDir, 0755); err != nil {
		log.Println("UploadImage mkdir error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	name := uuid.NewString()
	originalPath := filepath.Join(productPicDir, name+".jpg")
	thumbPath := filepath.Join(productPicDir, name+"_thumb.jpg")

	if err := imaging.Save(img, originalPath); err != nil {
		log.Println("UploadImage save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error uploading file")
		return
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		log.Println("UploadImage thumbnail error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error uploading file")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"url": utils.M{
			"imageUrl": "/static/productpic/" + name + ".jpg",
			"thumbUrl": "/static/productpic/" + name + "_thumb.jpg",
		},
	})
}
