// Package prompts holds the prompt templates sent to the text-generation
// endpoint.
package prompts

import "fmt"

// SQLGenerationSystemRole is the fixed system message for SQL generation.
const SQLGenerationSystemRole = "Eres un experto en SQLite que genera consultas SQL precisas para análisis de datos de restaurantes."

// dbSchema describes the snapshot schema for the model.
const dbSchema = `Esquema de la base de datos de restaurante:

Tabla: product_template
    - id INTEGER PRIMARY KEY
    - name TEXT (nombre del producto)
    - list_price REAL (precio de venta)
    - cost_price REAL (costo del producto)
    - category TEXT (categoría del producto)
    - is_active BOOLEAN (1 si está activo, 0 si está descontinuado)

Tabla: sale_order
    - id INTEGER PRIMARY KEY
    - date_order TEXT (fecha del pedido en formato 'YYYY-MM-DD')
    - customer_name TEXT (nombre del cliente)
    - total_amount REAL (monto total del pedido)

Tabla: sale_order_line
    - id INTEGER PRIMARY KEY
    - order_id INTEGER (id del pedido relacionado)
    - product_id INTEGER (id del producto vendido)
    - quantity INTEGER (cantidad vendida)
    - price_unit REAL (precio por unidad)

Tabla: stock_quant
    - product_id INTEGER PRIMARY KEY
    - quantity_available INTEGER (cantidad disponible en stock)

Tabla: res_partner
    - id INTEGER PRIMARY KEY
    - name TEXT (nombre del cliente o empresa)
    - email TEXT
    - city TEXT (ciudad)
    - number_of_orders INTEGER (número de pedidos realizados)

Relaciones:
- sale_order_line.order_id se relaciona con sale_order.id
- sale_order_line.product_id se relaciona con product_template.id
- stock_quant.product_id se relaciona con product_template.id
- sale_order.customer_name se relaciona con res_partner.name

Información relevante:
- Se considera que un producto está en riesgo de agotarse cuando quantity_available <= 5 y es un producto activo (is_active = 1)
- Los productos descontinuados tienen is_active = 0
- Las categorías de productos incluyen: hamburguesas, wraps, patatas, bebidas, postres, complementos, promociones
- Las fechas están en formato 'YYYY-MM-DD', siendo 2025-04 el mes actual (abril)
- Las principales ciudades son: Madrid, Barcelona, Valencia, Sevilla`

// queryExamples are few-shot examples of question → SQL pairs.
const queryExamples = `Ejemplos de consultas SQL para preguntas comunes:

1. Pregunta: "¿Qué productos están en riesgo de agotarse?"
   SQL:
   SELECT p.name AS Producto, sq.quantity_available AS Stock
   FROM product_template p
   JOIN stock_quant sq ON p.id = sq.product_id
   WHERE sq.quantity_available <= 5 AND sq.quantity_available > 0 AND p.is_active = 1
   ORDER BY sq.quantity_available ASC;

2. Pregunta: "¿Cuáles son los productos más vendidos?"
   SQL:
   SELECT p.name AS Producto, SUM(sol.quantity) AS TotalVendido
   FROM product_template p
   JOIN sale_order_line sol ON p.id = sol.product_id
   GROUP BY p.id
   ORDER BY TotalVendido DESC
   LIMIT 10;

3. Pregunta: "¿Qué categoría genera más ingresos?"
   SQL:
   SELECT p.category AS Categoría, ROUND(SUM(sol.quantity * sol.price_unit), 2) AS TotalVentas
   FROM product_template p
   JOIN sale_order_line sol ON p.id = sol.product_id
   GROUP BY p.category
   ORDER BY TotalVentas DESC;

4. Pregunta: "Mostrar todas las órdenes de venta con su cliente y monto"
   SQL:
   SELECT so.id AS ID, so.date_order AS Fecha, so.customer_name AS Cliente, so.total_amount AS Total
   FROM sale_order so
   ORDER BY so.date_order DESC
   LIMIT 15;`

// BuildSQLGenerationPrompt renders the user prompt for turning a question
// into a single SQLite SELECT.
func BuildSQLGenerationPrompt(question string) string {
	return fmt.Sprintf(`%s

%s

Basándote en el esquema de la base de datos y los ejemplos anteriores, genera una consulta SQL válida para SQLite que responda a la siguiente pregunta: "%s"

Reglas importantes:
1. Genera SOLO el código SQL, sin explicaciones ni comentarios adicionales.
2. Para visualizaciones y gráficos, utiliza 2 columnas: una para etiquetas (textos descriptivos) y otra para valores numéricos.
3. Para consultas que requieran mostrar múltiples datos o detalles, puedes utilizar más columnas.
4. Usa alias claros para las columnas como "Producto", "Cantidad", "Ventas", etc.
5. Si la consulta trata sobre riesgo de agotarse, usa el criterio quantity_available <= 5 para productos activos.
6. Asegúrate de unir correctamente las tablas según las relaciones descritas.
7. Limita los resultados a 15 filas si es una consulta que puede devolver muchos resultados.

Genera únicamente la consulta SQL:`, dbSchema, queryExamples, question)
}
