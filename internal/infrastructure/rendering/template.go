package rendering

import (
	"bytes"
	"html/template"

	orderapp "github.com/osworks/backend/internal/application/order"
	"github.com/shopspring/decimal"
)

// quoteTemplate is the printable quote document. Values are formatted with a
// decimal comma to match the documents the shop hands to clients.
const quoteTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Orcamento</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; color: #222; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .muted { color: #666; }
  table { width: 100%; border-collapse: collapse; margin-top: 12px; }
  th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
  th { background: #f3f3f3; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 16px; width: 40%; margin-left: auto; }
  .totals td { border: none; padding: 3px 8px; }
  .totals tr.grand td { border-top: 1px solid #222; font-weight: bold; }
</style>
</head>
<body>
  <h1>Orcamento</h1>
  <p class="muted">Numero: {{.ID}}</p>
  <p>
    <strong>Cliente:</strong> {{.ClientName}}<br>
    {{if .ClientContact}}<strong>Contato:</strong> {{.ClientContact}}<br>{{end}}
    {{if .Equipment}}<strong>Equipamento:</strong> {{.Equipment}}<br>{{end}}
    {{if .Problem}}<strong>Problema relatado:</strong> {{.Problem}}<br>{{end}}
    {{if .ValidUntil}}<strong>Valido ate:</strong> {{.ValidUntil.Format "02/01/2006"}}<br>{{end}}
  </p>
  {{if .ServiceDescription}}
  <p><strong>Servico:</strong> {{.ServiceDescription}} ({{money .ServiceValue}})</p>
  {{end}}
  {{if .Items}}
  <table>
    <tr><th>Produto</th><th class="num">Qtd</th><th class="num">Preco unit.</th><th class="num">Total</th></tr>
    {{range .Items}}
    <tr>
      <td>{{.ProductName}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{money .UnitPrice}}</td>
      <td class="num">{{money .Total}}</td>
    </tr>
    {{end}}
  </table>
  {{end}}
  <table class="totals">
    <tr><td>Servico</td><td class="num">{{money .ServiceValue}}</td></tr>
    <tr><td>Pecas</td><td class="num">{{money .ItemsValue}}</td></tr>
    <tr class="grand"><td>Total</td><td class="num">{{money .TotalValue}}</td></tr>
  </table>
  {{if .Notes}}<p class="muted">{{.Notes}}</p>{{end}}
</body>
</html>`

var quoteTmpl = template.Must(template.New("quote").Funcs(template.FuncMap{
	"money": formatMoney,
}).Parse(quoteTemplate))

// formatMoney renders a decimal as "R$ 1234,56".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	// swap the decimal point for a comma
	out := []byte(s)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == '.' {
			out[i] = ','
			break
		}
	}
	return "R$ " + string(out)
}

// BuildQuoteHTML renders the printable HTML for a quote.
func BuildQuoteHTML(quote orderapp.OrderResponse) (string, error) {
	var buf bytes.Buffer
	if err := quoteTmpl.Execute(&buf, quote); err != nil {
		return "", err
	}
	return buf.String(), nil
}
