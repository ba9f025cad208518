// Package cxml exporta órdenes de compra como documentos cXML 1.2 OrderRequest.
package cxml

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Procurement-api/internal/application/purchasing"
)

var _ purchasing.CXMLBuilder = (*Builder)(nil)

const (
	cxmlVersion = "1.2.014"
	docType     = `cXML SYSTEM "http://xml.cxml.org/schemas/cXML/1.2.014/cXML.dtd"`
	currency    = "INR"
)

// Builder construye el OrderRequest. FromDomain identifica al comprador en el header.
type Builder struct {
	FromDomain   string
	FromIdentity string
	now          func() time.Time
}

// NewBuilder crea el builder con la identidad del comprador.
func NewBuilder(fromIdentity string) *Builder {
	return &Builder{FromDomain: "NetworkID", FromIdentity: fromIdentity, now: time.Now}
}

// BuildOrderRequest serializa la orden con sus líneas.
func (b *Builder) BuildOrderRequest(doc *purchasing.OrderDocument) ([]byte, error) {
	if doc == nil || doc.Order == nil || doc.Vendor == nil {
		return nil, fmt.Errorf("cxml: faltan orden o proveedor")
	}
	po := doc.Order
	now := b.now().UTC()

	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	d.CreateDirective("DOCTYPE " + docType)

	root := d.CreateElement("cXML")
	root.CreateAttr("version", cxmlVersion)
	root.CreateAttr("payloadID", fmt.Sprintf("%d.%s@procurement", now.Unix(), po.ID))
	root.CreateAttr("timestamp", now.Format(time.RFC3339))
	root.CreateAttr("xml:lang", "en-US")

	header := root.CreateElement("Header")
	credential(header.CreateElement("From"), b.FromDomain, b.FromIdentity)
	to := doc.Vendor.GSTNumber
	if to == "" {
		to = doc.Vendor.ID
	}
	credential(header.CreateElement("To"), "GST", to)
	credential(header.CreateElement("Sender"), b.FromDomain, b.FromIdentity).
		Parent().CreateElement("UserAgent").SetText("SCLEN Procurement")

	req := root.CreateElement("Request")
	req.CreateAttr("deploymentMode", "production")
	order := req.CreateElement("OrderRequest")

	oh := order.CreateElement("OrderRequestHeader")
	oh.CreateAttr("orderID", po.PONumber)
	oh.CreateAttr("orderDate", po.CreatedAt.UTC().Format(time.RFC3339))
	oh.CreateAttr("type", "new")
	money(oh.CreateElement("Total"), po.TotalAmount.StringFixed(2))
	if doc.Organization != nil {
		shipTo := oh.CreateElement("ShipTo").CreateElement("Address")
		shipTo.CreateElement("Name").SetText(doc.Organization.Name)
		if doc.Organization.Address != "" {
			shipTo.CreateElement("PostalAddress").CreateElement("Street").SetText(doc.Organization.Address)
		}
	}
	if po.PaymentTerms != "" {
		oh.CreateElement("Comments").SetText("Payment terms: " + po.PaymentTerms)
	}

	for i, l := range doc.Lines {
		item := order.CreateElement("ItemOut")
		item.CreateAttr("quantity", l.Quantity.String())
		item.CreateAttr("lineNumber", strconv.Itoa(i+1))
		if l.DeliveryDate != "" {
			item.CreateAttr("requestedDeliveryDate", l.DeliveryDate)
		}
		id := item.CreateElement("ItemID")
		id.CreateElement("SupplierPartID").SetText(nonEmpty(l.InternalCode, l.ProductID))
		detail := item.CreateElement("ItemDetail")
		money(detail.CreateElement("UnitPrice"), l.UnitPrice.StringFixed(2))
		desc := detail.CreateElement("Description")
		desc.CreateAttr("xml:lang", "en")
		desc.SetText(l.ProductName)
		detail.CreateElement("UnitOfMeasure").SetText(nonEmpty(l.UOM, "EA"))
	}

	d.Indent(2)
	out, err := d.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("cxml: serializar: %w", err)
	}
	return out, nil
}

// credential agrega <Credential domain=".."><Identity>..</Identity></Credential> y devuelve el Credential.
func credential(parent *etree.Element, domain, identity string) *etree.Element {
	c := parent.CreateElement("Credential")
	c.CreateAttr("domain", domain)
	c.CreateElement("Identity").SetText(identity)
	return c
}

func money(parent *etree.Element, amount string) {
	m := parent.CreateElement("Money")
	m.CreateAttr("currency", currency)
	m.SetText(amount)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
