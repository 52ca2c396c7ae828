package repository

import (
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/shopspring/decimal"
)

type itemFlags struct {
	popular    bool
	spicy      bool
	vegetarian bool
}

func v(label string, price float64) models.PriceVariant {
	return models.PriceVariant{Label: label, Price: decimal.NewFromFloat(price)}
}

func item(id, name string, price float64, cat models.Category, sec models.MenuSection, image, desc string, variants []models.PriceVariant, fl itemFlags) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        name,
		Description: desc,
		Price:       decimal.NewFromFloat(price),
		Variants:    variants,
		Category:    cat,
		Section:     sec,
		Image:       image,
		Popular:     fl.popular,
		Spicy:       fl.spicy,
		Vegetarian:  fl.vegetarian,
	}
}

// seedMenu returns the full catalog in display order. Variant order is
// significant: the first variant is the default selection.
func seedMenu() []models.MenuItem {
	reg := models.SectionRegular
	cat := models.SectionCatering

	return []models.MenuItem{
		// Appetizers
		item("app1", "Baked Clams (6)", 15.50, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1615887023516-9b663b679d9e?auto=format&fit=crop&q=80&w=800", "Whole baked little neck clams with seasoned breadcrumbs.", nil, itemFlags{}),
		item("app2", "Mozzarella Sticks (6)", 12.00, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1531749668029-2db88e4276c7?auto=format&fit=crop&q=80&w=800", "Served with tomato sauce.", nil, itemFlags{vegetarian: true}),
		item("app3", "Zucchini Sticks", 12.95, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1604908554025-f09d8cc4c5d5?auto=format&fit=crop&q=80&w=800", "Crispy fried zucchini.", nil, itemFlags{vegetarian: true}),
		item("app4", "Fried Calamari", 12.95, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1626804475297-411dbe63c4fa?auto=format&fit=crop&q=80&w=800", "Golden fried calamari with marinara.", nil, itemFlags{popular: true}),
		item("app5", "Stuffed Mushrooms", 13.75, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1623961990059-28356e22bc8e?auto=format&fit=crop&q=80&w=800", "Stuffed with vegetable stuffing.", nil, itemFlags{}),
		item("app6", "Chicken Tenders", 12.95, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?auto=format&fit=crop&q=80&w=800", "Served with honey mustard.", nil, itemFlags{}),
		item("app7", "Mozzarella Caprese", 8.50, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1529312266912-b33cf6227e24?auto=format&fit=crop&q=80&w=800", "Fresh mozzarella, tomato, basil.", nil, itemFlags{vegetarian: true}),
		item("app8", "Buffalo Wings (10)", 16.00, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1527477396000-e27163b481c2?auto=format&fit=crop&q=80&w=800", "Spicy chicken wings served with bleu cheese.", nil, itemFlags{spicy: true}),
		item("app9", "Hot Antipasto", 20.50, models.CategoryAppetizers, reg, "https://images.unsplash.com/photo-1541529086526-db283c563270?auto=format&fit=crop&q=80&w=800", "Clams, mussels, shrimp, eggplant rollatini, mozzarella sticks.", nil, itemFlags{}),

		// Salads
		item("sal1", "Garden Salad", 8.55, models.CategorySalads, reg, "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&q=80&w=800", "Mixed greens and fresh vegetables.", []models.PriceVariant{v("Small", 8.55), v("Large", 12.50)}, itemFlags{vegetarian: true}),
		item("sal2", "Caesar Salad", 9.50, models.CategorySalads, reg, "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?auto=format&fit=crop&q=80&w=800", "Romaine, croutons, parmesan.", []models.PriceVariant{v("Small", 9.50), v("Large", 13.50)}, itemFlags{}),
		item("sal3", "Kale Salad", 14.85, models.CategorySalads, reg, "https://images.unsplash.com/photo-1539132036485-2c8eb107870a?auto=format&fit=crop&q=80&w=800", "Fresh kale with lemon vinaigrette.", nil, itemFlags{vegetarian: true}),
		item("sal4", "Chopped Salad", 15.25, models.CategorySalads, reg, "https://images.unsplash.com/photo-1540420773420-3366772f4999?auto=format&fit=crop&q=80&w=800", "Finely chopped mixed greens and vegetables.", nil, itemFlags{vegetarian: true}),
		item("sal5", "Greek Salad", 14.75, models.CategorySalads, reg, "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?auto=format&fit=crop&q=80&w=800", "Feta, olives, cucumber, tomato.", nil, itemFlags{vegetarian: true}),
		item("sal6", "Sicilian Salad", 15.75, models.CategorySalads, reg, "https://images.unsplash.com/photo-1623428187969-5da2dcea5ebf?auto=format&fit=crop&q=80&w=800", "Mixed greens, olives, capers, fresh mozzarella, roasted peppers.", nil, itemFlags{vegetarian: true}),

		// Soups
		item("soup1", "Pasta Fagioli", 9.25, models.CategorySoups, reg, "https://images.unsplash.com/photo-1547592166-23acbe346499?auto=format&fit=crop&q=80&w=800", "Pasta and beans.", nil, itemFlags{vegetarian: true}),
		item("soup2", "Minestrone", 9.25, models.CategorySoups, reg, "https://images.unsplash.com/photo-1547592166-23acbe346499?auto=format&fit=crop&q=80&w=800", "Vegetable soup.", nil, itemFlags{vegetarian: true}),
		item("soup3", "Chicken Noodle", 9.25, models.CategorySoups, reg, "https://images.unsplash.com/photo-1603569283847-aa295f0d016a?auto=format&fit=crop&q=80&w=800", "Classic chicken soup.", nil, itemFlags{}),
		item("soup4", "Tortellini in Brodo", 9.25, models.CategorySoups, reg, "https://images.unsplash.com/photo-1559563362-c667ba5f5480?auto=format&fit=crop&q=80&w=800", "Cheese tortellini in broth.", nil, itemFlags{}),

		// Pasta
		item("pas1", "Spaghetti with Tomato Sauce", 11.50, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1598866594230-a7d127dddb18?auto=format&fit=crop&q=80&w=800", "Classic tomato sauce.", []models.PriceVariant{v("Lunch", 11.50), v("Dinner", 17.50)}, itemFlags{vegetarian: true}),
		item("pas2", "Pasta Alla Norma", 13.50, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1626844131082-256783844137?auto=format&fit=crop&q=80&w=800", "Eggplant, marinara, ricotta salata.", []models.PriceVariant{v("Lunch", 13.50), v("Dinner", 21.25)}, itemFlags{vegetarian: true}),
		item("pas3", "Clam Sauce", 15.75, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1596450502967-826372d89d42?auto=format&fit=crop&q=80&w=800", "Chopped clams in garlic wine sauce (Red or White).", []models.PriceVariant{v("Lunch", 15.75), v("Dinner", 23.50)}, itemFlags{}),
		item("pas4", "Fettuccine Alfredo", 13.50, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1645112411341-6c4fd023714a?auto=format&fit=crop&q=80&w=800", "Creamy parmesan sauce.", []models.PriceVariant{v("Lunch", 13.50), v("Dinner", 21.00)}, itemFlags{vegetarian: true}),
		item("pas5", "Penne Alla Vodka", 14.75, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1626844131082-256783844137?auto=format&fit=crop&q=80&w=800", "Pink cream sauce with vodka.", []models.PriceVariant{v("Lunch", 14.75), v("Dinner", 22.25)}, itemFlags{popular: true, vegetarian: true}),
		item("pas6", "Spaghetti Carbonara", 14.75, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1612874742237-6526221588e3?auto=format&fit=crop&q=80&w=800", "Cream sauce with bacon and onions.", []models.PriceVariant{v("Lunch", 14.75), v("Dinner", 21.50)}, itemFlags{}),
		item("pas7", "Pasta Bolognese", 14.25, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1551892374-ecf8754cf8b0?auto=format&fit=crop&q=80&w=800", "Classic meat sauce.", []models.PriceVariant{v("Lunch", 14.25), v("Dinner", 21.50)}, itemFlags{}),
		item("pas8", "Calamari Marinara", 15.75, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?auto=format&fit=crop&q=80&w=800", "Over Linguine.", []models.PriceVariant{v("Lunch", 15.75), v("Dinner", 23.50)}, itemFlags{}),
		item("pas9", "Lobster Fra Diavolo", 16.35, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1559339352-11d035aa65de?auto=format&fit=crop&q=80&w=800", "Spicy marinara with lobster meat.", []models.PriceVariant{v("Lunch", 16.35), v("Dinner", 23.50)}, itemFlags{spicy: true}),
		item("pas10", "Shrimp Scampi", 14.50, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1633337474564-1d9478ca4e2e?auto=format&fit=crop&q=80&w=800", "Garlic, butter, white wine.", []models.PriceVariant{v("Lunch", 14.50), v("Dinner", 22.00)}, itemFlags{}),
		item("pas11", "Rigatoni Montanasa", 15.00, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1589302168068-964664d93dc0?auto=format&fit=crop&q=80&w=800", "Spinach, sun-dried tomatoes, grilled chicken, garlic & oil.", []models.PriceVariant{v("Lunch", 15.00), v("Dinner", 23.50)}, itemFlags{}),
		item("pas12", "Penne Alla Rosa", 17.00, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?auto=format&fit=crop&q=80&w=800", "Chicken, broccoli, sun-dried tomatoes, garlic & oil.", []models.PriceVariant{v("Lunch", 17.00), v("Dinner", 25.25)}, itemFlags{}),
		item("pas13", "Pasta Pesto", 13.95, models.CategoryPasta, reg, "https://images.unsplash.com/photo-1473093295043-cdd812d0e601?auto=format&fit=crop&q=80&w=800", "Fresh basil pesto sauce.", []models.PriceVariant{v("Lunch", 13.95), v("Dinner", 20.95)}, itemFlags{vegetarian: true}),

		// Baked pasta
		item("bp1", "Baked Ziti", 17.25, models.CategoryBakedPasta, reg, "https://images.unsplash.com/photo-1595295333158-4742f28fbd85?auto=format&fit=crop&q=80&w=800", "Ricotta, mozzarella, tomato sauce.", nil, itemFlags{vegetarian: true}),
		item("bp2", "Baked Ravioli", 17.25, models.CategoryBakedPasta, reg, "https://images.unsplash.com/photo-1551183053-bf91a1d81141?auto=format&fit=crop&q=80&w=800", "Cheese ravioli baked with mozzarella.", nil, itemFlags{vegetarian: true}),
		item("bp3", "Homemade Meat Lasagna", 18.60, models.CategoryBakedPasta, reg, "https://images.unsplash.com/photo-1574868235945-060fadb398ea?auto=format&fit=crop&q=80&w=800", "Layers of meat, cheese, and pasta.", nil, itemFlags{popular: true}),
		item("bp4", "Baked Manicotti", 17.25, models.CategoryBakedPasta, reg, "https://images.unsplash.com/photo-1595295333158-4742f28fbd85?auto=format&fit=crop&q=80&w=800", "Pasta tubes filled with ricotta.", nil, itemFlags{vegetarian: true}),
		item("bp5", "Baked Stuffed Shells", 17.25, models.CategoryBakedPasta, reg, "https://images.unsplash.com/photo-1551183053-bf91a1d81141?auto=format&fit=crop&q=80&w=800", "Jumbo shells filled with ricotta.", nil, itemFlags{vegetarian: true}),

		// Entrees
		item("ent1", "Marsala", 27.00, models.CategoryEntrees, reg, "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?auto=format&fit=crop&q=80&w=800", "Mushrooms and marsala wine sauce.", []models.PriceVariant{v("Chicken", 27.00), v("Veal", 29.00)}, itemFlags{}),
		item("ent2", "Francese", 27.00, models.CategoryEntrees, reg, "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?auto=format&fit=crop&q=80&w=800", "Lemon butter white wine sauce.", []models.PriceVariant{v("Chicken", 27.00), v("Veal", 29.00)}, itemFlags{}),
		item("ent3", "Piccata", 27.00, models.CategoryEntrees, reg, "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?auto=format&fit=crop&q=80&w=800", "Capers, lemon, white wine.", []models.PriceVariant{v("Chicken", 27.00), v("Veal", 29.00)}, itemFlags{}),
		item("ent4", "Chicken Cordon Bleu", 27.95, models.CategoryEntrees, reg, "https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8?auto=format&fit=crop&q=80&w=800", "Stuffed with ham and swiss cheese.", nil, itemFlags{}),
		item("ent5", "Broiled Salmon", 24.25, models.CategoryEntrees, reg, "https://images.unsplash.com/photo-1467003909585-2f8a7270028d?auto=format&fit=crop&q=80&w=800", "Fresh salmon filet.", nil, itemFlags{}),
		item("ent6", "Shrimp Fra Diavolo", 29.95, models.CategoryEntrees, reg, "https://images.unsplash.com/photo-1559339352-11d035aa65de?auto=format&fit=crop&q=80&w=800", "Spicy marinara sauce.", nil, itemFlags{spicy: true}),
		item("ent7", "Grilled Chicken Primavera", 27.00, models.CategoryEntrees, reg, "https://images.unsplash.com/photo-1532550907401-a500c9a57435?auto=format&fit=crop&q=80&w=800", "With fresh vegetables.", nil, itemFlags{}),

		// Parmigiana
		item("parm1", "Chicken Parmigiana", 26.00, models.CategoryParmigiana, reg, "https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8?auto=format&fit=crop&q=80&w=800", "Breaded cutlet, marinara, mozzarella.", nil, itemFlags{popular: true}),
		item("parm2", "Veal Cutlet Parm", 26.00, models.CategoryParmigiana, reg, "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?auto=format&fit=crop&q=80&w=800", "Tender veal cutlet.", nil, itemFlags{}),
		item("parm3", "Eggplant Parm", 22.15, models.CategoryParmigiana, reg, "https://images.unsplash.com/photo-1590124694936-a3da1d374241?auto=format&fit=crop&q=80&w=800", "Layers of eggplant.", nil, itemFlags{vegetarian: true}),
		item("parm4", "Meatball Parm", 22.15, models.CategoryParmigiana, reg, "https://images.unsplash.com/photo-1529042410759-befb1204b468?auto=format&fit=crop&q=80&w=800", "Homemade meatballs.", nil, itemFlags{}),
		item("parm5", "Shrimp Parm", 27.00, models.CategoryParmigiana, reg, "https://images.unsplash.com/photo-1559339352-11d035aa65de?auto=format&fit=crop&q=80&w=800", "Breaded jumbo shrimp.", nil, itemFlags{}),
		item("parm6", "Sausage & Peppers", 22.95, models.CategoryParmigiana, reg, "https://images.unsplash.com/photo-1637332212957-897db6743956?auto=format&fit=crop&q=80&w=800", "Served as a platter.", nil, itemFlags{}),

		// Heroes
		item("her1", "Meatball Parm Hero", 11.50, models.CategoryHeroes, reg, "https://images.unsplash.com/photo-1529042410759-befb1204b468?auto=format&fit=crop&q=80&w=800", "Meatballs, sauce, cheese.", nil, itemFlags{}),
		item("her2", "Chicken Cutlet Hero", 12.95, models.CategoryHeroes, reg, "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?auto=format&fit=crop&q=80&w=800", "Breaded chicken cutlet.", nil, itemFlags{}),
		item("her3", "Chicken Parm Hero", 14.00, models.CategoryHeroes, reg, "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?auto=format&fit=crop&q=80&w=800", "Chicken parmigiana on bread.", nil, itemFlags{}),
		item("her4", "Sausage & Peppers Hero", 11.95, models.CategoryHeroes, reg, "https://images.unsplash.com/photo-1550989460-0adf9ea622e2?auto=format&fit=crop&q=80&w=800", "Italian sausage, peppers, onions.", nil, itemFlags{}),
		item("her5", "Eggplant Parm Hero", 11.50, models.CategoryHeroes, reg, "https://images.unsplash.com/photo-1529042410759-befb1204b468?auto=format&fit=crop&q=80&w=800", "Eggplant parm on bread.", nil, itemFlags{}),
		item("her6", "Veal Parm Hero", 15.25, models.CategoryHeroes, reg, "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?auto=format&fit=crop&q=80&w=800", "Veal parm on bread.", nil, itemFlags{}),
		item("her7", "Shrimp Parm Hero", 14.80, models.CategoryHeroes, reg, "https://images.unsplash.com/photo-1559339352-11d035aa65de?auto=format&fit=crop&q=80&w=800", "Shrimp parm on bread.", nil, itemFlags{}),
		item("her8", "Potato & Egg Hero", 10.95, models.CategoryHeroes, reg, "https://images.unsplash.com/photo-1525351463902-326720d27571?auto=format&fit=crop&q=80&w=800", "Classic potato and egg.", nil, itemFlags{}),

		// Wraps
		item("wr1", "Grilled Chicken Caesar Wrap", 15.50, models.CategoryWraps, reg, "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?auto=format&fit=crop&q=80&w=800", "Chicken, romaine, caesar.", nil, itemFlags{}),
		item("wr2", "California Wrap", 17.75, models.CategoryWraps, reg, "https://images.unsplash.com/photo-1563583594-52d9a377d611?auto=format&fit=crop&q=80&w=800", "Chicken, lettuce, tomato, mayo.", nil, itemFlags{}),
		item("wr3", "Cajun Chicken Wrap", 15.50, models.CategoryWraps, reg, "https://images.unsplash.com/photo-1563583594-52d9a377d611?auto=format&fit=crop&q=80&w=800", "Spicy cajun chicken.", nil, itemFlags{}),
		item("wr4", "Chicken Cutlet Vodka Wrap", 15.50, models.CategoryWraps, reg, "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?auto=format&fit=crop&q=80&w=800", "Cutlet with vodka sauce.", nil, itemFlags{}),

		// Pizza
		item("piz1", "Neopolitan (Round 18\")", 23.30, models.CategoryPizza, reg, "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&q=80&w=800", "Classic round cheese pizza.", []models.PriceVariant{v("Slice", 3.90), v("Pie", 23.30)}, itemFlags{popular: true}),
		item("piz2", "Sicilian (Square 12x18\")", 24.30, models.CategoryPizza, reg, "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&q=80&w=800", "Thick crust square pizza.", []models.PriceVariant{v("Slice", 3.90), v("Pie", 24.30)}, itemFlags{}),
		item("piz3", "Grandma Pie", 24.30, models.CategoryPizza, reg, "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&q=80&w=800", "Thin square, garlic, fresh basil.", []models.PriceVariant{v("Slice", 3.90), v("Pie", 24.30)}, itemFlags{popular: true}),
		item("piz4", "Gluten Free Cauliflower", 18.65, models.CategoryPizza, reg, "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&q=80&w=800", "12 inch gluten free crust.", nil, itemFlags{}),

		// Specialty pizza
		item("sp1", "White Pizza", 29.50, models.CategorySpecialtyPizza, reg, "https://images.unsplash.com/photo-1511690656952-34342d5c2895?auto=format&fit=crop&q=80&w=800", "Ricotta and mozzarella.", []models.PriceVariant{v("Slice", 5.00), v("Pie", 29.50)}, itemFlags{}),
		item("sp2", "Buffalo Chicken Pizza", 35.50, models.CategorySpecialtyPizza, reg, "https://images.unsplash.com/photo-1593560708920-63984dc01ae4?auto=format&fit=crop&q=80&w=800", "Spicy chicken, bleu cheese.", []models.PriceVariant{v("Slice", 6.00), v("Pie", 35.50)}, itemFlags{spicy: true}),
		item("sp3", "Chicken Bacon Ranch", 35.50, models.CategorySpecialtyPizza, reg, "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&q=80&w=800", "Chicken, bacon, ranch drizzle.", []models.PriceVariant{v("Slice", 6.00), v("Pie", 35.50)}, itemFlags{}),
		item("sp4", "Margherita Pizza", 29.00, models.CategorySpecialtyPizza, reg, "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&q=80&w=800", "Fresh mozzarella, basil, marinara.", []models.PriceVariant{v("Slice", 5.00), v("Pie", 29.00)}, itemFlags{}),
		item("sp5", "Chicken Parm Pizza", 24.30, models.CategorySpecialtyPizza, reg, "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?auto=format&fit=crop&q=80&w=800", "Breaded chicken, marinara.", []models.PriceVariant{v("Slice", 3.90), v("Pie", 24.30)}, itemFlags{}),
		item("sp6", "MVP Pizza", 29.25, models.CategorySpecialtyPizza, reg, "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&q=80&w=800", "Marinara, Vodka, Pesto sauce.", []models.PriceVariant{v("Slice", 5.25), v("Pie", 29.25)}, itemFlags{}),

		// Calzones & rolls
		item("cal1", "Cheese Calzone", 8.80, models.CategoryCalzones, reg, "https://images.unsplash.com/photo-1533777419517-3e6fdb10dd3b?auto=format&fit=crop&q=80&w=800", "Ricotta and mozzarella.", nil, itemFlags{}),
		item("cal2", "Chicken Roll", 8.80, models.CategoryCalzones, reg, "https://images.unsplash.com/photo-1506084868230-bb9d95c24759?auto=format&fit=crop&q=80&w=800", "Chicken parm roll.", nil, itemFlags{}),
		item("cal3", "Sausage & Pepper Roll", 8.80, models.CategoryCalzones, reg, "https://images.unsplash.com/photo-1506084868230-bb9d95c24759?auto=format&fit=crop&q=80&w=800", "Sausage, peppers, cheese.", nil, itemFlags{}),
		item("cal4", "Pinwheels", 5.15, models.CategoryCalzones, reg, "https://images.unsplash.com/photo-1576458088443-04a19bb13da6?auto=format&fit=crop&q=80&w=800", "Buffalo Chicken or Spinach/Broccoli.", nil, itemFlags{}),
		item("cal5", "Garlic Knots (6)", 3.60, models.CategoryCalzones, reg, "https://images.unsplash.com/photo-1573140247632-f84660f67627?auto=format&fit=crop&q=80&w=800", "With fresh garlic and oil.", nil, itemFlags{}),

		// Catering
		item("cat_app1", "Baked Clams", 73.00, models.CategoryAppetizers, cat, "https://images.unsplash.com/photo-1615887023516-9b663b679d9e?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 73.00), v("Full Tray", 125.00)}, itemFlags{}),
		item("cat_app2", "Mozzarella Sticks", 57.00, models.CategoryAppetizers, cat, "https://images.unsplash.com/photo-1531749668029-2db88e4276c7?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 57.00), v("Full Tray", 88.00)}, itemFlags{}),
		item("cat_app3", "Fried Calamari", 73.00, models.CategoryAppetizers, cat, "https://images.unsplash.com/photo-1626804475297-411dbe63c4fa?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 73.00), v("Full Tray", 130.00)}, itemFlags{}),
		item("cat_app4", "Stuffed Mushrooms", 68.00, models.CategoryAppetizers, cat, "https://images.unsplash.com/photo-1623961990059-28356e22bc8e?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 68.00), v("Full Tray", 119.00)}, itemFlags{}),
		item("cat_app5", "Buffalo Wings", 68.00, models.CategoryAppetizers, cat, "https://images.unsplash.com/photo-1527477396000-e27163b481c2?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 68.00), v("Full Tray", 114.00)}, itemFlags{}),
		item("cat_sal1", "Garden Salad", 42.00, models.CategorySalads, cat, "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 42.00), v("Full Tray", 78.00)}, itemFlags{}),
		item("cat_sal2", "Caesar Salad", 52.00, models.CategorySalads, cat, "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 52.00), v("Full Tray", 88.00)}, itemFlags{}),
		item("cat_pas1", "Penne Alla Vodka", 78.00, models.CategoryPasta, cat, "https://images.unsplash.com/photo-1626844131082-256783844137?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 78.00), v("Full Tray", 130.00)}, itemFlags{}),
		item("cat_pas2", "Baked Ziti", 73.00, models.CategoryBakedPasta, cat, "https://images.unsplash.com/photo-1595295333158-4742f28fbd85?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 73.00), v("Full Tray", 119.00)}, itemFlags{}),
		item("cat_pas3", "Baked Meat Lasagna", 78.00, models.CategoryBakedPasta, cat, "https://images.unsplash.com/photo-1574868235945-060fadb398ea?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 78.00), v("Full Tray", 125.00)}, itemFlags{}),
		item("cat_pas4", "Rigatoni Bolognese", 73.00, models.CategoryPasta, cat, "https://images.unsplash.com/photo-1551892374-ecf8754cf8b0?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 73.00), v("Full Tray", 125.00)}, itemFlags{}),
		item("cat_ent1", "Chicken Parmigiana", 78.00, models.CategoryParmigiana, cat, "https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 78.00), v("Full Tray", 140.00)}, itemFlags{}),
		item("cat_ent2", "Chicken Marsala", 88.00, models.CategoryEntrees, cat, "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 88.00), v("Full Tray", 150.00)}, itemFlags{}),
		item("cat_ent3", "Chicken Francese", 88.00, models.CategoryEntrees, cat, "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 88.00), v("Full Tray", 150.00)}, itemFlags{}),
		item("cat_ent4", "Sausage & Peppers", 73.00, models.CategoryParmigiana, cat, "https://images.unsplash.com/photo-1637332212957-897db6743956?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 73.00), v("Full Tray", 130.00)}, itemFlags{}),
		item("cat_ent5", "Eggplant Parmigiana", 73.00, models.CategoryParmigiana, cat, "https://images.unsplash.com/photo-1590124694936-a3da1d374241?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 73.00), v("Full Tray", 125.00)}, itemFlags{}),
		item("cat_ent6", "Meatball Parmigiana", 73.00, models.CategoryParmigiana, cat, "https://images.unsplash.com/photo-1529042410759-befb1204b468?auto=format&fit=crop&q=80&w=800", "Catering Tray.", []models.PriceVariant{v("Half Tray", 73.00), v("Full Tray", 130.00)}, itemFlags{}),
	}
}
