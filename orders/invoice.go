package orders

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrintInvoice renders an order as a PDF invoice with a QR code carrying the
// order reference, downloadable by the order's owner or an admin.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := findOrder(ctx, ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("PrintInvoice find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if order.UserID != userID && utils.GetRoleFromRequest(r) != "admin" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	qrPNG, err := qrcode.Encode("order:"+order.OrderID, qrcode.Medium, 256)
	if err != nil {
		log.Println("PrintInvoice QR error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Ship to: %s %s, %s, %s %s, %s",
		order.ShippingAddress.FirstName, order.ShippingAddress.LastName,
		order.ShippingAddress.Address, order.ShippingAddress.City,
		order.ShippingAddress.PostalCode, order.ShippingAddress.Country))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(90, 8, "Item")
	pdf.Cell(25, 8, "Size/Color")
	pdf.Cell(20, 8, "Qty")
	pdf.Cell(30, 8, "Price")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, it := range order.OrderItems {
		pdf.Cell(90, 7, it.Name)
		pdf.Cell(25, 7, fmt.Sprintf("%s/%s", it.Size, it.Color))
		pdf.Cell(20, 7, fmt.Sprintf("%d", it.Quantity))
		pdf.Cell(30, 7, fmt.Sprintf("%.2f", it.Price*float64(it.Quantity)))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(135, 8, "Total")
	pdf.Cell(30, 8, fmt.Sprintf("%.2f", order.TotalPrice))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 20, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("PrintInvoice PDF error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
