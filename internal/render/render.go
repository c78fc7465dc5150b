// Package render fills quotation templates with company and budget data.
// It is a pure string transformation: no I/O, no mutation of inputs, safe
// for concurrent use. The one non-deterministic output is the document
// number, redrawn on every call.
package render

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/orcaflow/orcaflow/internal/pdftemplate"
	"github.com/shopspring/decimal"
)

// CompanyFields carries the company attributes a template can reference.
type CompanyFields struct {
	Nome          string
	RazaoSocial   string
	CNPJ          string
	Representante string
	Endereco      string
	Telefone      string
	Email         string
	Logo          string
}

// Item is one quotation line as seen by the template engine.
type Item struct {
	ID            string          `json:"id"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Unidade       string          `json:"unidade"`
	Observacao    string          `json:"observacao,omitempty"`
}

const defaultUnidade = "UNIDADE"

// errorFragment is returned instead of propagating a render fault; the
// caller always gets a string it can show.
const errorFragment = `<div class="render-error">Não foi possível gerar o documento</div>`

// Render substitutes every recognized {{TOKEN}} in tpl and returns the
// final HTML. Unknown tokens are left verbatim. An empty tpl falls back
// to the default catalog template.
func Render(tpl string, company CompanyFields, clientName string, items []Item, createdAt time.Time) (out string) {
	defer func() {
		if recover() != nil {
			out = errorFragment
		}
	}()

	if strings.TrimSpace(tpl) == "" {
		tpl = pdftemplate.Default()
	}

	return substitute(tpl, tokenValues(company, clientName, items, createdAt))
}

func tokenValues(company CompanyFields, clientName string, items []Item, createdAt time.Time) map[string]string {
	total := decimal.Zero
	var rows strings.Builder
	for _, item := range items {
		lineTotal := item.ValorUnitario.Mul(decimal.NewFromInt(int64(item.Quantidade)))
		total = total.Add(lineTotal)

		unidade := item.Unidade
		if unidade == "" {
			unidade = defaultUnidade
		}
		fmt.Fprintf(&rows, "<tr>\n<td>%d</td>\n<td>%s</td>\n<td>%s</td>\n<td>R$ %s</td>\n<td>R$ %s</td>\n</tr>\n",
			item.Quantidade,
			unidade,
			item.Descricao,
			FormatValor(item.ValorUnitario),
			FormatValor(lineTotal),
		)
	}

	if items == nil {
		items = []Item{}
	}
	itensJSON, err := json.Marshal(items)
	if err != nil {
		panic(err)
	}

	razaoSocial := company.RazaoSocial
	if razaoSocial == "" {
		razaoSocial = company.Nome
	}

	return map[string]string{
		"NOME_EMPRESA":     company.Nome,
		"RAZAO_SOCIAL":     razaoSocial,
		"CNPJ_EMPRESA":     company.CNPJ,
		"REPRESENTANTE":    company.Representante,
		"ENDERECO_EMPRESA": company.Endereco,
		"TELEFONE_EMPRESA": company.Telefone,
		"EMAIL_EMPRESA":    company.Email,
		"LOGO_EMPRESA":     company.Logo,
		"NOME_CLIENTE":     clientName,
		"ITENS":            rows.String(),
		"ITENS_JSON":       string(itensJSON),
		"VALOR_TOTAL":      FormatValor(total),
		"DATA":             createdAt.Format("02/01/2006"),
		"NUMERO":           DocumentNumber(),
		"CIDADE":           CityFromAddress(company.Endereco),
	}
}

// substitute walks tpl once, replacing recognized tokens. Replacement
// values are emitted without rescanning, so token-like syntax inside a
// value can never trigger a second substitution.
func substitute(tpl string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(tpl))

	for {
		start := strings.Index(tpl, "{{")
		if start < 0 {
			b.WriteString(tpl)
			break
		}
		rest := tpl[start+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			b.WriteString(tpl)
			break
		}

		b.WriteString(tpl[:start])
		name := rest[:end]
		if value, ok := values[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(tpl[start : start+2+end+2])
		}
		tpl = rest[end+2:]
	}

	return b.String()
}

// DocumentNumber draws a 6-digit zero-padded number. It is not
// persisted; two renders of the same budget carry different numbers.
func DocumentNumber() string {
	return fmt.Sprintf("%06d", rand.Intn(1_000_000))
}

// CityFromAddress takes the text after the last comma of the address,
// trimmed. Addresses without a comma yield an empty city.
func CityFromAddress(endereco string) string {
	idx := strings.LastIndex(endereco, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(endereco[idx+1:])
}

// FormatValor renders a value with two decimals in the Brazilian
// convention: dots for thousands, comma for decimals.
func FormatValor(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + frac
	if negative {
		out = "-" + out
	}
	return out
}
