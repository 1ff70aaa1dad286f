package catalog

// builtinEntries is the hand-authored question set for the fast-food
// snapshot. Definition order matters: the matcher breaks score ties by
// keeping the first entry seen.
var builtinEntries = []Entry{
	{
		ID:       "productos_stock_critico",
		Question: "¿Qué productos están en riesgo de agotarse esta semana?",
		SQL: `SELECT p.name AS Producto, sq.quantity_available AS Stock
FROM stock_quant sq
JOIN product_template p ON sq.product_id = p.id
WHERE sq.quantity_available <= 5 AND sq.quantity_available > 0 AND p.is_active = 1
ORDER BY sq.quantity_available ASC;`,
		Description: "Muestra los productos activos con stock bajo (menor a 5 unidades)",
	},
	{
		ID:       "productos_mas_rentables",
		Question: "¿Cuál es el producto más rentable?",
		SQL: `SELECT p.name AS Producto,
       ROUND(((p.list_price - p.cost_price) / p.cost_price) * 100, 2) AS MargenPorcentaje
FROM product_template p
WHERE p.is_active = 1
ORDER BY ((p.list_price - p.cost_price) / p.cost_price) DESC
LIMIT 10;`,
		Description: "Muestra los 10 productos activos con mayor margen de beneficio en porcentaje",
	},
	{
		ID:       "categorias_mayor_ingreso",
		Question: "¿Cuáles son las categorías que generan más ingresos?",
		SQL: `SELECT p.category AS Categoría,
       ROUND(SUM(sol.quantity * sol.price_unit), 2) AS TotalVentas
FROM sale_order_line sol
JOIN product_template p ON sol.product_id = p.id
JOIN sale_order so ON sol.order_id = so.id
GROUP BY p.category
ORDER BY TotalVentas DESC;`,
		Description: "Muestra las categorías de productos ordenadas por el total de ventas generadas",
	},
	{
		ID:       "pedidos_por_ciudad",
		Question: "¿Cuántos pedidos hemos recibido por ciudad?",
		SQL: `SELECT rp.city AS Ciudad,
       COUNT(DISTINCT so.id) AS NumeroPedidos
FROM sale_order so
JOIN res_partner rp ON so.customer_name = rp.name
GROUP BY rp.city
ORDER BY NumeroPedidos DESC;`,
		Description: "Muestra la cantidad de pedidos recibidos agrupados por ciudad",
	},
	{
		ID:       "productos_sin_ventas",
		Question: "¿Qué productos se han dejado de vender en el último mes?",
		SQL: `SELECT p.name AS Producto,
       sq.quantity_available AS StockDisponible
FROM product_template p
LEFT JOIN (
    SELECT product_id, COUNT(*) as num_ventas
    FROM sale_order_line sol
    JOIN sale_order so ON sol.order_id = so.id
    WHERE so.date_order LIKE '2025-04%'
    GROUP BY product_id
) ventas_recientes ON p.id = ventas_recientes.product_id
JOIN stock_quant sq ON p.id = sq.product_id
WHERE ventas_recientes.num_ventas IS NULL
  AND p.is_active = 1
  AND sq.quantity_available > 0
ORDER BY p.name;`,
		Description: "Muestra productos activos con stock que no han tenido ventas en abril (mes actual)",
	},
	{
		ID:       "wraps_vendidos",
		Question: "¿Cuántos wraps se han vendido desde enero?",
		SQL: `SELECT p.name AS Producto,
       SUM(sol.quantity) AS UnidadesVendidas
FROM sale_order_line sol
JOIN product_template p ON sol.product_id = p.id
JOIN sale_order so ON sol.order_id = so.id
WHERE p.category = 'wraps'
GROUP BY p.id
ORDER BY UnidadesVendidas DESC;`,
		Description: "Muestra la cantidad de wraps vendidos agrupados por tipo de wrap",
	},
	{
		ID:       "productos_mas_vendidos",
		Question: "¿Cuáles son los productos más vendidos?",
		SQL: `SELECT p.name AS Producto,
       SUM(sol.quantity) AS CantidadVendida
FROM sale_order_line sol
JOIN product_template p ON sol.product_id = p.id
GROUP BY p.id
ORDER BY CantidadVendida DESC
LIMIT 10;`,
		Description: "Muestra los 10 productos más vendidos en general",
	},
	{
		ID:       "ventas_por_mes",
		Question: "¿Cómo han evolucionado las ventas en los últimos meses?",
		SQL: `SELECT
    substr(so.date_order, 1, 7) AS Mes,
    ROUND(SUM(so.total_amount), 2) AS TotalVentas
FROM sale_order so
GROUP BY substr(so.date_order, 1, 7)
ORDER BY Mes;`,
		Description: "Muestra la evolución de ventas por mes",
	},
	{
		ID:       "clientes_destacados",
		Question: "¿Quiénes son nuestros mejores clientes?",
		SQL: `SELECT rp.name AS Cliente,
       ROUND(SUM(so.total_amount), 2) AS TotalCompras
FROM sale_order so
JOIN res_partner rp ON so.customer_name = rp.name
GROUP BY so.customer_name
ORDER BY TotalCompras DESC
LIMIT 10;`,
		Description: "Muestra los 10 clientes que más han gastado en total",
	},
	{
		ID:       "productos_alto_margen",
		Question: "¿Qué productos tienen mayor margen de beneficio en euros?",
		SQL: `SELECT p.name AS Producto,
       ROUND(p.list_price - p.cost_price, 2) AS MargenEuros
FROM product_template p
WHERE p.is_active = 1
ORDER BY (p.list_price - p.cost_price) DESC
LIMIT 10;`,
		Description: "Muestra los 10 productos con mayor margen de beneficio en euros",
	},
}
