package prompts

import (
	"strings"
	"testing"
)

func TestBuildSQLGenerationPrompt(t *testing.T) {
	prompt := BuildSQLGenerationPrompt("¿Cuántos pedidos hubo en abril?")

	for _, table := range []string{
		"product_template", "sale_order", "sale_order_line", "stock_quant", "res_partner",
	} {
		if !strings.Contains(prompt, table) {
			t.Errorf("prompt missing table %q", table)
		}
	}

	if !strings.Contains(prompt, `"¿Cuántos pedidos hubo en abril?"`) {
		t.Error("prompt missing quoted user question")
	}
	if !strings.Contains(prompt, "Genera únicamente la consulta SQL:") {
		t.Error("prompt missing final instruction")
	}
}
