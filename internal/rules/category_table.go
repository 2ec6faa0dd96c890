package rules

// defaultAssociations maps a primary item to items commonly bought with it.
var defaultAssociations = map[string][]string{
	// Beverages
	"tea":             {"sugar", "honey", "milk"},
	"coffee":          {"sugar", "milk", "cream"},
	"green tea":       {"honey", "lemon"},
	"black tea":       {"milk", "sugar"},
	"tea bags":        {"milk", "sugar", "biscuits"},
	"ground coffee":   {"coffee filters", "milk"},
	"instant coffee":  {"milk", "sugar"},
	"coffee beans":    {"coffee filters", "milk"},
	"wine":            {"cheese", "crackers"},
	"beer":            {"chips", "peanuts"},
	"sparkling water": {"lemons", "limes"},
	"orange juice":    {"bread", "eggs"},

	// Bakery
	"bread":        {"butter", "jam"},
	"tortillas":    {"cheese", "salsa", "beans"},
	"burger buns":  {"ground beef", "cheese", "lettuce", "tomatoes"},
	"hot dog buns": {"hot dogs", "mustard", "ketchup"},
	"roti":         {"curry", "dhal"},
	"chapati":      {"dhal", "vegetables"},
	"pizza dough":  {"pizza sauce", "mozzarella"},
	"pizza base":   {"pizza sauce", "mozzarella"},
	"bagels":       {"cream cheese"},
	"croissants":   {"butter", "jam"},
	"cake":         {"candles", "ice cream"},
	"pita bread":   {"hummus", "falafel"},

	// Dairy
	"eggs":           {"milk", "cheese"},
	"milk":           {"cereal", "cookies"},
	"yogurt":         {"granola", "berries", "honey"},
	"greek yogurt":   {"honey", "berries", "granola"},
	"mozzarella":     {"tomatoes", "basil"},
	"cheese":         {"crackers", "bread"},
	"cheddar cheese": {"crackers", "apples"},
	"parmesan":       {"pasta", "basil"},
	"butter":         {"bread"},
	"cream cheese":   {"bagels", "smoked salmon"},

	// Pantry
	"pasta":          {"tomato sauce", "cheese"},
	"rice":           {"vegetables", "soy sauce"},
	"cereal":         {"milk", "bananas"},
	"oats":           {"milk", "honey", "bananas"},
	"oatmeal":        {"milk", "honey", "berries"},
	"granola":        {"yogurt", "berries"},
	"muesli":         {"milk", "yogurt"},
	"pancake mix":    {"maple syrup", "butter", "eggs"},
	"waffle mix":     {"maple syrup", "butter"},
	"flour":          {"sugar", "eggs", "baking powder"},
	"baking powder":  {"flour", "sugar"},
	"cake mix":       {"eggs", "oil", "frosting"},
	"brownie mix":    {"eggs", "oil"},
	"spaghetti":      {"pasta sauce", "parmesan", "garlic"},
	"penne":          {"pasta sauce", "parmesan"},
	"macaroni":       {"cheese", "milk"},
	"lasagna sheets": {"ground beef", "ricotta", "pasta sauce"},
	"noodles":        {"soy sauce", "vegetables", "eggs"},
	"ramen":          {"eggs", "green onions"},
	"taco shells":    {"ground beef", "cheese", "salsa", "lettuce"},
	"canned tuna":    {"mayonnaise", "bread", "sweetcorn"},
	"tofu":           {"soy sauce", "ginger", "green onions"},
	"lentils":        {"onions", "garlic", "cumin"},
	"dhal":           {"coconut milk", "onions", "turmeric"},
	"red dhal":       {"coconut milk", "onions", "turmeric"},
	"chickpeas":      {"tahini", "lemon", "garlic"},
	"beans":          {"rice", "onions"},
	"black beans":    {"rice", "salsa", "avocado"},
	"kidney beans":   {"rice", "chili powder"},
	"samba rice":     {"dhal", "coconut milk"},
	"red rice":       {"dhal", "coconut"},
	"basmati rice":   {"curry powder", "chicken"},
	"string hoppers": {"coconut milk", "pol sambol"},
	"coconut milk":   {"curry powder", "rice"},
	"curry powder":   {"coconut milk", "onions"},
	"pizza sauce":    {"mozzarella", "pizza dough"},
	"peanut butter":  {"bread", "jam", "bananas"},
	"jam":            {"bread", "butter"},
	"honey":          {"lemon", "tea"},
	"hummus":         {"pita bread", "carrots"},
	"salsa":          {"tortilla chips"},
	"soup":           {"bread", "crackers"},
	"chicken broth":  {"noodles", "carrots", "celery"},
	"stock":          {"onions", "carrots"},
	"olive oil":      {"balsamic vinegar", "garlic"},
	"vinegar":        {"olive oil"},
	"soy sauce":      {"rice", "ginger"},
	"ketchup":        {"fries", "burgers"},
	"mustard":        {"hot dogs", "sausages"},
	"mayonnaise":     {"bread", "lettuce"},
	"maple syrup":    {"pancakes", "waffles"},
	"sugar":          {"flour", "butter"},

	// Meat & Seafood
	"chicken":        {"vegetables", "spices"},
	"fish":           {"lemon", "vegetables"},
	"hot dogs":       {"hot dog buns", "mustard"},
	"ground beef":    {"onions", "tomato sauce", "spices"},
	"beef":           {"potatoes", "carrots", "onions"},
	"steak":          {"potatoes", "butter", "garlic"},
	"pork":           {"apples", "onions"},
	"pork chops":     {"apple sauce", "potatoes"},
	"lamb":           {"mint sauce", "potatoes", "rosemary"},
	"mutton":         {"onions", "spices", "potatoes"},
	"turkey":         {"cranberry sauce", "stuffing"},
	"chicken breast": {"vegetables", "rice"},
	"chicken wings":  {"hot sauce", "celery"},
	"sausages":       {"mustard", "bread rolls"},
	"bacon":          {"eggs", "bread"},
	"ham":            {"cheese", "bread"},
	"salmon":         {"lemon", "dill", "asparagus"},
	"tuna":           {"mayonnaise", "bread"},
	"shrimp":         {"garlic", "butter", "lemon"},
	"prawns":         {"garlic", "chillies", "lemon"},
	"crab":           {"lemon", "butter"},
	"squid":          {"garlic", "chillies"},
	"cuttlefish":     {"onions", "chillies"},
	"sardines":       {"onions", "tomatoes", "chillies"},

	// Prepared Foods
	"hoppers": {"eggs", "lunu miris"},

	// Produce
	"coconut":        {"rice", "chillies", "onions"},
	"curry leaves":   {"mustard seeds", "onions"},
	"strawberries":   {"cream", "sugar"},
	"berries":        {"yogurt", "granola"},
	"bananas":        {"peanut butter", "oats"},
	"apples":         {"peanut butter", "cinnamon"},
	"lemons":         {"honey", "ginger"},
	"avocado":        {"lime", "tomatoes", "onions"},
	"avocados":       {"lime", "tomatoes", "onions"},
	"tomatoes":       {"onions", "garlic", "basil"},
	"lettuce":        {"tomatoes", "cucumber", "salad dressing"},
	"salad":          {"salad dressing", "croutons"},
	"spinach":        {"garlic", "eggs"},
	"potatoes":       {"butter", "sour cream"},
	"sweet potatoes": {"cinnamon", "butter"},
	"carrots":        {"hummus", "celery"},
	"cucumber":       {"yogurt", "mint"},
	"onions":         {"garlic", "tomatoes"},
	"garlic":         {"ginger", "onions"},
	"ginger":         {"garlic", "lemon"},
	"mushrooms":      {"garlic", "butter"},
	"broccoli":       {"garlic", "cheese"},
	"cauliflower":    {"cheese", "curry powder"},
	"corn":           {"butter", "salt"},
	"green beans":    {"garlic", "almonds"},
	"asparagus":      {"lemon", "parmesan"},
	"bell peppers":   {"onions", "chicken"},
	"eggplant":       {"tomatoes", "garlic"},
	"brinjal":        {"onions", "chillies"},
	"okra":           {"onions", "tomatoes"},
	"pumpkin":        {"coconut milk", "onions"},
	"cabbage":        {"carrots", "onions"},
	"leeks":          {"potatoes", "butter"},
	"beetroot":       {"onions", "coconut milk"},
	"jackfruit":      {"coconut", "curry powder"},
	"mango":          {"sticky rice", "yogurt"},
	"pineapple":      {"chilli powder", "salt"},
	"watermelon":     {"mint", "feta"},
	"grapes":         {"cheese", "crackers"},

	// Snacks
	"crackers":       {"cheese", "hummus"},
	"chips":          {"salsa", "dip"},
	"tortilla chips": {"salsa", "guacamole"},
	"popcorn":        {"butter", "salt"},
	"cookies":        {"milk"},

	// Frozen
	"ice cream": {"cones", "chocolate syrup"},

	// Household
	"diapers":           {"wipes", "diaper cream"},
	"baby formula":      {"baby bottles", "wipes"},
	"paper towels":      {"dish soap", "sponges"},
	"dish soap":         {"sponges"},
	"laundry detergent": {"fabric softener"},
	"trash bags":        {"cleaning spray"},
	"dog food":          {"dog treats"},
	"cat food":          {"cat litter"},
	"charcoal":          {"lighter fluid", "sausages"},

	// Personal Care
	"shampoo":    {"conditioner"},
	"toothpaste": {"toothbrush", "dental floss"},
	"razors":     {"shaving cream"},
}
