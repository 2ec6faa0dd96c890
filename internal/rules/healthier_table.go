package rules

// defaultHealthier maps unhealthy items to a healthier swap, keyed by
// lowercased name.
var defaultHealthier = map[string]string{
	// Bakery
	"white bread":        "brown bread",
	"white rice":         "brown rice",
	"white flour":        "whole wheat flour",
	"white bagel":        "whole grain bagel",
	"bagels":             "whole grain bagels",
	"white bagels":       "whole grain bagels",
	"croissant":          "whole grain toast",
	"croissants":         "whole grain toast",
	"butter croissant":   "whole grain toast",
	"danish pastry":      "whole grain muffin",
	"pastries":           "whole grain muffins",
	"donut":              "whole grain muffin",
	"donuts":             "whole grain muffins",
	"doughnut":           "whole grain muffin",
	"doughnuts":          "whole grain muffins",
	"glazed donuts":      "bran muffins",
	"muffins":            "bran muffins",
	"blueberry muffins":  "oat bran muffins",
	"chocolate muffins":  "banana oat muffins",
	"cinnamon rolls":     "whole wheat raisin bread",
	"sweet buns":         "whole wheat buns",
	"white buns":         "whole wheat buns",
	"hamburger buns":     "whole wheat buns",
	"hot dog buns":       "whole wheat hot dog buns",
	"white rolls":        "whole grain rolls",
	"dinner rolls":       "whole grain rolls",
	"brioche":            "multigrain bread",
	"garlic bread":       "whole wheat pita",
	"white pita":         "whole wheat pita",
	"naan":               "whole wheat chapati",
	"butter naan":        "whole wheat chapati",
	"paratha":            "whole wheat roti",
	"white tortillas":    "whole wheat tortillas",
	"flour tortillas":    "corn tortillas",
	"tortilla wraps":     "whole wheat wraps",
	"white wraps":        "whole wheat wraps",
	"sandwich bread":     "whole grain sandwich bread",
	"sliced white bread": "sliced whole grain bread",
	"milk bread":         "multigrain bread",
	"french bread":       "whole grain baguette",
	"baguette":           "whole grain baguette",
	"ciabatta":           "whole grain ciabatta",
	"sourdough white":    "whole grain sourdough",
	"english muffins":    "whole wheat english muffins",
	"pancake mix":        "whole wheat pancake mix",
	"waffle mix":         "oat waffle mix",
	"frozen waffles":     "whole grain waffles",
	"cake":               "fruit salad",
	"cakes":              "fruit salad",
	"chocolate cake":     "dark chocolate squares",
	"cheesecake":         "greek yogurt parfait",
	"cupcakes":           "fruit muffins",
	"brownies":           "dark chocolate squares",
	"pie":                "baked apples",
	"apple pie":          "baked apples",
	"pound cake":         "banana bread",
	"tea cake":           "oat bars",
	"sponge cake":        "angel food cake",
	"swiss roll":         "fruit and nut bar",
	"cream buns":         "whole wheat raisin buns",
	"fish buns":          "whole wheat veggie wraps",
	"white crackers":     "whole grain crackers",
	"cream crackers":     "whole grain crackers",
	"saltine crackers":   "whole grain crackers",
	"cheese crackers":    "rice crackers",
	"breadcrumbs":        "whole wheat breadcrumbs",
	"panko":              "whole wheat panko",
	"pizza dough":        "whole wheat pizza dough",
	"pizza base":         "cauliflower pizza base",
	"puff pastry":        "filo pastry",
	"shortcrust pastry":  "whole wheat pastry",
	"pie crust":          "whole wheat pie crust",

	// Pantry
	"pasta":                    "whole wheat pasta",
	"spaghetti":                "whole wheat spaghetti",
	"macaroni":                 "whole wheat macaroni",
	"penne":                    "whole wheat penne",
	"fusilli":                  "whole wheat fusilli",
	"lasagna sheets":           "whole wheat lasagna sheets",
	"egg noodles":              "buckwheat noodles",
	"instant noodles":          "whole grain noodles",
	"ramen noodles":            "soba noodles",
	"cup noodles":              "rice noodles",
	"maggi noodles":            "whole wheat noodles",
	"white noodles":            "brown rice noodles",
	"couscous":                 "whole wheat couscous",
	"basmati rice":             "brown basmati rice",
	"jasmine rice":             "brown jasmine rice",
	"sticky rice":              "brown rice",
	"instant rice":             "quinoa",
	"fried rice mix":           "cauliflower rice",
	"risotto rice":             "pearl barley",
	"white sugar":              "coconut sugar",
	"sugar":                    "honey",
	"brown sugar":              "coconut sugar",
	"icing sugar":              "stevia",
	"powdered sugar":           "stevia",
	"caster sugar":             "coconut sugar",
	"corn syrup":               "maple syrup",
	"golden syrup":             "date syrup",
	"pancake syrup":            "pure maple syrup",
	"table syrup":              "date syrup",
	"artificial sweetener":     "stevia",
	"sweetened condensed milk": "evaporated skim milk",
	"condensed milk":           "evaporated skim milk",
	"vegetable oil":            "olive oil",
	"sunflower oil":            "olive oil",
	"corn oil":                 "avocado oil",
	"palm oil":                 "coconut oil",
	"canola oil":               "extra virgin olive oil",
	"shortening":               "coconut oil",
	"margarine":                "olive oil spread",
	"lard":                     "olive oil",
	"ghee":                     "extra virgin olive oil",
	"vegetable shortening":     "avocado oil",
	"salt":                     "herb seasoning",
	"table salt":               "pink himalayan salt",
	"seasoning salt":           "herb seasoning",
	"garlic salt":              "garlic powder",
	"onion salt":               "onion powder",
	"msg":                      "herb seasoning",
	"stock cubes":              "low-sodium broth",
	"bouillon cubes":           "low-sodium broth",
	"chicken stock cubes":      "low-sodium chicken broth",
	"beef stock cubes":         "low-sodium beef broth",
	"chicken broth":            "low-sodium chicken broth",
	"beef broth":               "low-sodium beef broth",
	"vegetable broth":          "low-sodium vegetable broth",
	"canned soup":              "low-sodium soup",
	"instant soup":             "homemade vegetable soup",
	"cream of mushroom soup":   "low-fat mushroom soup",
	"cream of chicken soup":    "low-fat chicken soup",
	"canned vegetables":        "frozen vegetables",
	"canned corn":              "frozen corn",
	"canned peas":              "frozen peas",
	"canned fruit":             "fresh fruit",
	"canned peaches":           "fresh peaches",
	"canned pineapple":         "fresh pineapple",
	"fruit cocktail":           "fresh fruit salad",
	"canned fruit in syrup":    "canned fruit in juice",
	"canned beans":             "dried beans",
	"baked beans":              "low-sugar baked beans",
	"refried beans":            "fat-free refried beans",
	"canned tuna in oil":       "canned tuna in water",
	"canned salmon in oil":     "canned salmon in water",
	"canned sardines in oil":   "canned sardines in water",
	"tuna in oil":              "tuna in water",
	"sardines in oil":          "sardines in water",
	"canned chili":             "homemade bean chili",
	"canned spaghetti":         "whole wheat spaghetti",
	"canned ravioli":           "whole wheat pasta",
	"boxed mac and cheese":     "whole wheat pasta",
	"mac and cheese":           "whole wheat pasta",
	"instant mashed potatoes":  "sweet potatoes",
	"potato flakes":            "sweet potatoes",
	"stuffing mix":             "quinoa",
	"cornflakes":               "oat flakes",
	"corn flakes":              "oat flakes",
	"frosted flakes":           "bran flakes",
	"sugary cereal":            "oatmeal",
	"cereal":                   "oatmeal",
	"chocolate cereal":         "muesli",
	"honey loops":              "whole grain loops",
	"coco pops":                "unsweetened muesli",
	"fruit loops":              "whole grain cereal",
	"granola":                  "unsweetened muesli",
	"sweetened granola":        "unsweetened muesli",
	"instant oatmeal":          "rolled oats",
	"flavored oatmeal":         "steel cut oats",
	"quick oats":               "steel cut oats",
	"rice krispies":            "puffed brown rice",
	"puffed rice":              "puffed quinoa",
	"cornmeal":                 "whole grain cornmeal",
	"semolina":                 "whole wheat semolina",
	"all purpose flour":        "whole wheat flour",
	"self raising flour":       "whole wheat flour",
	"cake flour":               "oat flour",
	"maida":                    "atta flour",
	"rice flour":               "red rice flour",
	"string hoppers":           "red rice string hoppers",
	"white string hoppers":     "red rice string hoppers",
	"white rice flour":         "red rice flour",
	"white raw rice":           "red raw rice",
	"samba rice":               "red rice",
	"keeri samba":              "red rice",
	"nadu rice":                "red nadu rice",
	"white nadu":               "red nadu rice",
	"white basmati":            "brown basmati rice",
	"dhal curry mix":           "red lentils",
	"instant curry mix":        "homemade curry powder",
	"curry paste":              "homemade curry powder",
	"coconut milk":             "light coconut milk",
	"coconut milk powder":      "light coconut milk",
	"coconut cream":            "light coconut milk",
	"canned coconut milk":      "light coconut milk",
	"peanut butter":            "natural peanut butter",
	"sweetened peanut butter":  "natural peanut butter",
	"chocolate spread":         "almond butter",
	"hazelnut spread":          "almond butter",
	"nutella":                  "almond butter",
	"jam":                      "fruit spread with no added sugar",
	"jelly":                    "fruit spread with no added sugar",
	"marmalade":                "low-sugar marmalade",
	"strawberry jam":           "mashed strawberries",
	"grape jelly":              "no-sugar grape spread",
	"honey mustard":            "dijon mustard",
	"ketchup":                  "no-sugar ketchup",
	"tomato ketchup":           "no-sugar ketchup",
	"tomato sauce":             "low-sodium tomato sauce",
	"chili sauce":              "fresh salsa",
	"sweet chili sauce":        "fresh salsa",
	"bbq sauce":                "low-sugar bbq sauce",
	"barbecue sauce":           "low-sugar barbecue sauce",
	"steak sauce":              "homemade herb sauce",
	"soy sauce":                "low-sodium soy sauce",
	"teriyaki sauce":           "low-sodium teriyaki sauce",
	"oyster sauce":             "low-sodium oyster sauce",
	"fish sauce":               "low-sodium fish sauce",
	"hoisin sauce":             "low-sugar hoisin sauce",
	"pasta sauce":              "low-sodium marinara",
	"alfredo sauce":            "marinara sauce",
	"cheese sauce":             "nutritional yeast sauce",
	"white sauce":              "cauliflower sauce",
	"pesto":                    "homemade basil pesto",
	"gravy":                    "low-sodium gravy",
	"gravy mix":                "low-sodium gravy",
	"mayonnaise":               "greek yogurt",
	"mayo":                     "greek yogurt",
	"light mayo":               "greek yogurt",
	"salad cream":              "greek yogurt dressing",
	"ranch dressing":           "yogurt dressing",
	"caesar dressing":          "lemon vinaigrette",
	"thousand island dressing": "balsamic vinaigrette",
	"blue cheese dressing":     "yogurt dressing",
	"creamy dressing":          "olive oil vinaigrette",
	"salad dressing":           "olive oil and vinegar",
	"tartar sauce":             "yogurt dill sauce",
	"sandwich spread":          "hummus",
	"cheese spread":            "hummus",
	"cream cheese spread":      "hummus",
	"croutons":                 "toasted nuts",
	"bacon bits":               "toasted seeds",
	"fried onions":             "fresh onions",
	"pickles":                  "fresh cucumber",
	"sweet pickles":            "fresh cucumber",
	"relish":                   "fresh salsa",
	"canned olives":            "fresh olives",
	"salted nuts":              "unsalted nuts",
	"salted peanuts":           "unsalted peanuts",
	"honey roasted peanuts":    "raw peanuts",
	"salted cashews":           "raw cashews",
	"candied nuts":             "raw almonds",
	"salted almonds":           "raw almonds",
	"salted pistachios":        "unsalted pistachios",
	"chocolate almonds":        "raw almonds",
	"yogurt raisins":           "raisins",
	"sweetened cranberries":    "unsweetened cranberries",
	"dried cranberries":        "unsweetened dried cranberries",
	"candied fruit":            "dried apricots",
	"glace cherries":           "fresh cherries",
	"maraschino cherries":      "fresh cherries",
	"fruit leather":            "fresh fruit",
	"cake mix":                 "whole wheat cake mix",
	"brownie mix":              "black bean brownie mix",
	"cookie dough":             "oat cookie dough",
	"frosting":                 "greek yogurt frosting",
	"icing":                    "whipped greek yogurt",
	"sprinkles":                "chopped nuts",
	"chocolate chips":          "dark chocolate chips",
	"milk chocolate chips":     "dark chocolate chips",
	"cocoa mix":                "unsweetened cocoa powder",
	"hot chocolate mix":        "unsweetened cocoa powder",
	"drinking chocolate":       "unsweetened cocoa powder",
	"malted milk powder":       "unsweetened cocoa powder",
	"milo":                     "unsweetened cocoa powder",
	"horlicks":                 "oat milk",
	"custard powder":           "chia pudding",
	"instant pudding":          "chia pudding",
	"jelly crystals":           "fresh fruit",
	"gelatin dessert":          "fresh fruit",
	"marshmallows":             "dried fruits",
	"toffee":                   "dates",
	"caramel":                  "dates",
	"caramel sauce":            "date syrup",
	"chocolate syrup":          "unsweetened cocoa powder",
	"whipped topping":          "whipped greek yogurt",
	"coffee creamer":           "low-fat milk",
	"non-dairy creamer":        "almond milk",
	"flavored coffee creamer":  "unsweetened almond milk",
	"powdered creamer":         "skim milk powder",
	"milk powder":              "skim milk powder",
	"full cream milk powder":   "skim milk powder",

	// Dairy
	"full cream milk":       "low-fat milk",
	"whole milk":            "low-fat milk",
	"full fat milk":         "skim milk",
	"chocolate milk":        "low-fat milk",
	"strawberry milk":       "low-fat milk",
	"flavored milk":         "unsweetened milk",
	"milkshake":             "fruit smoothie",
	"milk shake":            "fruit smoothie",
	"banana milkshake":      "banana smoothie",
	"sweetened almond milk": "unsweetened almond milk",
	"sweetened soy milk":    "unsweetened soy milk",
	"sweetened oat milk":    "unsweetened oat milk",
	"vanilla soy milk":      "unsweetened soy milk",
	"butter":                "olive oil",
	"salted butter":         "unsalted butter",
	"butter spread":         "olive oil spread",
	"cream":                 "low-fat milk",
	"heavy cream":           "half and half",
	"whipping cream":        "greek yogurt",
	"double cream":          "light cream",
	"sour cream":            "greek yogurt",
	"creme fraiche":         "greek yogurt",
	"cream cheese":          "low-fat cream cheese",
	"full fat cream cheese": "low-fat cream cheese",
	"mascarpone":            "ricotta",
	"cheddar cheese":        "reduced-fat cheddar",
	"cheese":                "low-fat cheese",
	"processed cheese":      "natural cheese",
	"cheese slices":         "reduced-fat swiss cheese",
	"american cheese":       "reduced-fat swiss cheese",
	"cheese singles":        "reduced-fat cheese slices",
	"string cheese":         "part-skim mozzarella",
	"mozzarella":            "part-skim mozzarella",
	"brie":                  "part-skim mozzarella",
	"camembert":             "cottage cheese",
	"blue cheese":           "feta",
	"gouda":                 "swiss cheese",
	"parmesan":              "nutritional yeast",
	"grated cheese":         "part-skim mozzarella",
	"shredded cheese":       "reduced-fat shredded cheese",
	"cheese dip":            "hummus",
	"queso":                 "salsa",
	"nacho cheese":          "salsa",
	"ricotta":               "part-skim ricotta",
	"cottage cheese":        "low-fat cottage cheese",
	"flavored yogurt":       "plain greek yogurt",
	"fruit yogurt":          "plain greek yogurt with fresh fruit",
	"sweetened yogurt":      "plain greek yogurt",
	"vanilla yogurt":        "plain greek yogurt",
	"strawberry yogurt":     "plain yogurt with strawberries",
	"yogurt drink":          "kefir",
	"drinking yogurt":       "kefir",
	"frozen yogurt bars":    "greek yogurt",
	"curd":                  "low-fat curd",
	"buffalo curd":          "low-fat curd",
	"sweet curd":            "plain low-fat curd",
	"watalappan":            "fruit salad",
	"kiri pani":             "plain curd",
	"custard":               "greek yogurt",
	"rice pudding":          "chia pudding",
	"eggnog":                "low-fat milk",
	"egg yolks":             "egg whites",

	// Meat & Seafood
	"bacon":              "turkey bacon",
	"pork bacon":         "turkey bacon",
	"streaky bacon":      "back bacon",
	"sausage":            "chicken sausage",
	"sausages":           "chicken sausages",
	"pork sausages":      "chicken sausages",
	"breakfast sausage":  "turkey sausage",
	"hot dogs":           "chicken hot dogs",
	"hot dog":            "chicken hot dog",
	"frankfurters":       "chicken frankfurters",
	"salami":             "sliced turkey breast",
	"pepperoni":          "turkey pepperoni",
	"chorizo":            "chicken chorizo",
	"bologna":            "sliced turkey breast",
	"ham":                "sliced chicken breast",
	"deli ham":           "sliced turkey breast",
	"deli meat":          "sliced turkey breast",
	"luncheon meat":      "sliced chicken breast",
	"spam":               "sliced chicken breast",
	"corned beef":        "lean roast beef",
	"canned corned beef": "canned tuna in water",
	"meatballs":          "turkey meatballs",
	"beef meatballs":     "chicken meatballs",
	"ground beef":        "lean ground turkey",
	"minced beef":        "lean minced chicken",
	"beef mince":         "lean turkey mince",
	"pork mince":         "lean chicken mince",
	"ground pork":        "lean ground chicken",
	"burger patties":     "turkey burger patties",
	"beef burgers":       "turkey burgers",
	"beef patties":       "lean turkey patties",
	"ribs":               "chicken breast",
	"pork ribs":          "skinless chicken breast",
	"spare ribs":         "lean pork tenderloin",
	"pork belly":         "pork tenderloin",
	"pork chops":         "pork tenderloin",
	"lamb chops":         "lean lamb leg",
	"ribeye steak":       "sirloin steak",
	"ribeye":             "sirloin steak",
	"t-bone steak":       "lean sirloin steak",
	"prime rib":          "lean roast beef",
	"brisket":            "lean beef round",
	"beef liver":         "chicken breast",
	"chicken wings":      "chicken breast",
	"chicken thighs":     "skinless chicken breast",
	"chicken skin":       "skinless chicken breast",
	"fried chicken":      "grilled chicken",
	"chicken nuggets":    "grilled chicken strips",
	"chicken tenders":    "baked chicken strips",
	"breaded chicken":    "grilled chicken breast",
	"crumbed chicken":    "grilled chicken breast",
	"chicken kiev":       "grilled chicken breast",
	"rotisserie chicken": "skinless roast chicken",
	"duck":               "skinless chicken",
	"goose":              "skinless turkey",
	"fish fingers":       "baked fish fillets",
	"fish sticks":        "baked fish fillets",
	"breaded fish":       "grilled fish",
	"battered fish":      "grilled fish",
	"fried fish":         "baked fish",
	"fish and chips":     "baked fish with sweet potato",
	"crab sticks":        "fresh crab",
	"imitation crab":     "fresh crab",
	"surimi":             "fresh white fish",
	"fried shrimp":       "grilled shrimp",
	"breaded shrimp":     "grilled shrimp",
	"tempura prawns":     "grilled prawns",
	"smoked salmon":      "fresh salmon",
	"salted fish":        "fresh fish",
	"dried fish":         "fresh fish",
	"karawala":           "fresh fish",
	"sprats":             "fresh sardines",
	"fish cutlets":       "baked fish cakes",
	"fish cakes":         "baked fish cakes",
	"tuna mayo":          "tuna in water",
	"beef jerky":         "turkey jerky",
	"jerky":              "turkey jerky",
	"pate":               "hummus",
	"liver pate":         "hummus",
	"meat pie":           "lentil pie",
	"sausage rolls":      "whole wheat veggie wraps",
	"pork pie":           "chicken and vegetable pie",
	"chicken pie":        "chicken and vegetable stir fry",

	// Frozen
	"ice cream":                           "frozen yogurt",
	"vanilla ice cream":                   "frozen greek yogurt",
	"chocolate ice cream":                 "dark chocolate frozen yogurt",
	"ice cream bars":                      "frozen fruit bars",
	"ice cream sandwiches":                "frozen yogurt bars",
	"ice cream cones":                     "frozen fruit bars",
	"popsicles":                           "frozen fruit bars",
	"ice lollies":                         "frozen fruit bars",
	"sorbet":                              "frozen berries",
	"gelato":                              "frozen yogurt",
	"frozen pizza":                        "whole wheat pizza base",
	"pizza":                               "whole wheat veggie pizza",
	"pepperoni pizza":                     "veggie pizza",
	"cheese pizza":                        "thin crust veggie pizza",
	"frozen dinners":                      "homemade meal prep",
	"tv dinners":                          "homemade meal prep",
	"frozen lasagna":                      "vegetable lasagna",
	"frozen burritos":                     "whole wheat wraps",
	"frozen pies":                         "frozen berries",
	"frozen fries":                        "frozen sweet potato wedges",
	"french fries":                        "baked sweet potato fries",
	"fries":                               "baked potato wedges",
	"potato wedges":                       "baked sweet potato wedges",
	"hash browns":                         "roasted potatoes",
	"tater tots":                          "roasted sweet potatoes",
	"onion rings":                         "roasted onions",
	"frozen spring rolls":                 "fresh spring rolls",
	"spring rolls":                        "fresh rice paper rolls",
	"samosas":                             "baked samosas",
	"frozen samosas":                      "baked vegetable patties",
	"frozen dumplings":                    "steamed vegetable dumplings",
	"frozen nuggets":                      "grilled chicken strips",
	"frozen fish fingers":                 "frozen fish fillets",
	"frozen breaded fish":                 "frozen plain fish fillets",
	"frozen vegetables in sauce":          "plain frozen vegetables",
	"frozen mixed vegetables with butter": "plain frozen mixed vegetables",
	"frozen garlic bread":                 "whole wheat pita",
	"frozen pancakes":                     "whole grain pancake mix",
	"frozen croissants":                   "whole grain bread",
	"frozen desserts":                     "frozen fruit",
	"frozen cheesecake":                   "frozen berries",
	"frozen pastries":                     "frozen berries",
	"frozen pizza rolls":                  "whole wheat wraps",
	"pizza rolls":                         "veggie wraps",
	"frozen mac and cheese":               "whole wheat pasta",

	// Beverages
	"soda":                    "sparkling water",
	"sodas":                   "sparkling water",
	"soft drinks":             "sparkling water",
	"soft drink":              "sparkling water",
	"cola":                    "sparkling water",
	"coke":                    "sparkling water",
	"pepsi":                   "sparkling water",
	"sprite":                  "sparkling water with lemon",
	"fanta":                   "sparkling water with orange slices",
	"lemonade":                "homemade lemon water",
	"orange soda":             "sparkling water with orange",
	"ginger ale":              "ginger tea",
	"root beer":               "sparkling water",
	"cream soda":              "sparkling water",
	"diet soda":               "sparkling water",
	"diet coke":               "sparkling water",
	"energy drink":            "green tea",
	"energy drinks":           "green tea",
	"red bull":                "green tea",
	"monster energy":          "green tea",
	"sports drink":            "coconut water",
	"sports drinks":           "coconut water",
	"gatorade":                "coconut water",
	"powerade":                "coconut water",
	"vitamin water":           "infused water",
	"flavored water":          "infused water",
	"sweetened iced tea":      "unsweetened iced tea",
	"iced tea":                "unsweetened iced tea",
	"bottled iced tea":        "home-brewed iced tea",
	"sweet tea":               "unsweetened tea",
	"milk tea":                "green tea",
	"bubble tea":              "green tea",
	"chai latte":              "unsweetened chai tea",
	"instant tea":             "loose leaf tea",
	"tea bags with sugar":     "plain tea bags",
	"flavored coffee":         "black coffee",
	"instant coffee":          "ground coffee",
	"3 in 1 coffee":           "black coffee",
	"coffee mix":              "black coffee",
	"iced coffee":             "cold brew coffee",
	"frappuccino":             "cold brew coffee",
	"canned coffee":           "cold brew coffee",
	"latte":                   "black coffee",
	"cappuccino":              "black coffee",
	"mocha":                   "black coffee",
	"caramel macchiato":       "black coffee",
	"fruit juice":             "fresh fruit",
	"juice":                   "whole fruit",
	"orange juice":            "fresh oranges",
	"apple juice":             "fresh apples",
	"grape juice":             "fresh grapes",
	"cranberry juice":         "unsweetened cranberry juice",
	"pineapple juice":         "fresh pineapple",
	"mango juice":             "fresh mango",
	"fruit punch":             "infused water",
	"juice boxes":             "water bottles",
	"fruit drink":             "infused water",
	"cordial":                 "infused water",
	"squash":                  "infused water",
	"fruit cordial":           "infused water",
	"nectar":                  "fresh fruit",
	"mango nectar":            "fresh mango",
	"smoothie":                "homemade smoothie",
	"bottled smoothie":        "homemade smoothie",
	"beer":                    "non-alcoholic beer",
	"lager":                   "non-alcoholic beer",
	"wine":                    "sparkling water",
	"red wine":                "grape juice spritzer",
	"white wine":              "sparkling water with lime",
	"cider":                   "sparkling water with apple",
	"alcopops":                "sparkling water",
	"cocktail mix":            "sparkling water with lime",
	"tonic water":             "sparkling water",
	"hot cocoa":               "unsweetened cocoa",
	"chocolate drink":         "unsweetened cocoa",
	"malted drink":            "oat milk",
	"ginger beer":             "ginger tea",
	"kombucha with sugar":     "unsweetened kombucha",
	"sweetened coconut water": "plain coconut water",
	"thambili":                "king coconut water",
	"faluda":                  "fruit smoothie",

	// Snacks
	"potato chips":              "baked chips",
	"chips":                     "baked chips",
	"crisps":                    "baked crisps",
	"cheese puffs":              "air-popped popcorn",
	"cheetos":                   "air-popped popcorn",
	"doritos":                   "baked tortilla chips",
	"tortilla chips":            "baked tortilla chips",
	"corn chips":                "baked corn chips",
	"nachos":                    "baked tortilla chips",
	"pringles":                  "baked veggie chips",
	"kettle chips":              "baked potato chips",
	"sour cream chips":          "baked chips",
	"bbq chips":                 "baked chips",
	"salt and vinegar chips":    "baked chips",
	"cassava chips":             "baked cassava chips",
	"banana chips":              "dried banana slices",
	"fried banana chips":        "dried banana slices",
	"plantain chips":            "baked plantain chips",
	"murukku":                   "roasted chickpeas",
	"mixture":                   "roasted chickpeas",
	"bombay mix":                "roasted chickpeas",
	"spicy mixture":             "roasted chickpeas",
	"fried peanuts":             "dry roasted peanuts",
	"fried cashews":             "raw cashews",
	"prawn crackers":            "rice crackers",
	"pork rinds":                "roasted seaweed",
	"pretzels":                  "whole grain pretzels",
	"butter popcorn":            "air-popped popcorn",
	"microwave popcorn":         "air-popped popcorn",
	"caramel popcorn":           "air-popped popcorn",
	"kettle corn":               "air-popped popcorn",
	"popcorn":                   "air-popped popcorn",
	"candy":                     "dried fruits",
	"candies":                   "dried fruits",
	"sweets":                    "dried fruits",
	"lollipops":                 "fresh berries",
	"gummy bears":               "dried fruit",
	"gummies":                   "dried fruit",
	"jelly beans":               "fresh grapes",
	"sour candy":                "dried mango",
	"licorice":                  "dried figs",
	"chewing gum":               "sugar-free gum",
	"bubble gum":                "sugar-free gum",
	"mints":                     "sugar-free mints",
	"hard candy":                "fresh fruit",
	"cotton candy":              "fresh berries",
	"chocolate":                 "dark chocolate",
	"chocolates":                "dark chocolate",
	"milk chocolate":            "dark chocolate",
	"white chocolate":           "dark chocolate",
	"chocolate bar":             "dark chocolate",
	"chocolate bars":            "dark chocolate",
	"candy bar":                 "protein bar",
	"candy bars":                "protein bars",
	"snickers":                  "mixed nuts",
	"mars bar":                  "dates stuffed with almonds",
	"kitkat":                    "dark chocolate",
	"kit kat":                   "dark chocolate",
	"twix":                      "dark chocolate",
	"m&ms":                      "trail mix",
	"m and ms":                  "trail mix",
	"skittles":                  "dried fruits",
	"chocolate covered raisins": "raisins",
	"chocolate covered nuts":    "raw nuts",
	"truffles":                  "dark chocolate",
	"fudge":                     "dates",
	"cookies":                   "oatmeal cookies",
	"cookie":                    "oatmeal cookie",
	"biscuits":                  "oat biscuits",
	"chocolate biscuits":        "oat biscuits",
	"cream biscuits":            "digestive biscuits",
	"cream crackers with jam":   "whole grain crackers",
	"chocolate chip cookies":    "oatmeal raisin cookies",
	"sandwich cookies":          "oatmeal cookies",
	"oreos":                     "oatmeal cookies",
	"oreo":                      "oatmeal cookies",
	"wafers":                    "rice cakes",
	"chocolate wafers":          "rice cakes",
	"cream wafers":              "rice cakes",
	"shortbread":                "oat biscuits",
	"butter cookies":            "oatmeal cookies",
	"ginger biscuits":           "oat biscuits",
	"marie biscuits":            "oat biscuits",
	"lemon puff":                "oat biscuits",
	"custard creams":            "digestive biscuits",
	"jammie dodgers":            "oat biscuits",
	"granola bars":              "homemade granola bars",
	"cereal bars":               "nut bars",
	"chocolate granola bars":    "nut and seed bars",
	"protein bars with sugar":   "nut bars",
	"pop tarts":                 "whole grain toast",
	"toaster pastries":          "whole grain toast",
	"snack cakes":               "banana bread",
	"twinkies":                  "banana bread",
	"brownie bites":             "date balls",
	"rice crispy treats":        "rice cakes",
	"trail mix with candy":      "plain trail mix",
	"fruit snacks":              "fresh fruit",
	"fruit gummies":             "fresh fruit",
	"fruit roll ups":            "fresh fruit",
	"dried fruit with sugar":    "unsweetened dried fruit",
	"sweetened dried mango":     "unsweetened dried mango",
	"yogurt covered pretzels":   "whole grain pretzels",
	"cheese straws":             "veggie sticks",
	"crackers":                  "whole grain crackers",
	"snack mix":                 "unsalted mixed nuts",
	"party mix":                 "unsalted mixed nuts",
	"dip":                       "hummus",
	"french onion dip":          "hummus",
	"spinach dip":               "tzatziki",
	"queso dip":                 "salsa",
	"kokis":                     "roasted chickpeas",
	"kavum":                     "dates",
	"konda kavum":               "dates",
	"aluwa":                     "dates",
	"kalu dodol":                "dates",
	"dodol":                     "dates",
	"halwa":                     "dates",
	"jaggery sweets":            "dates",
	"sweet meat":                "fresh fruit",
	"laddu":                     "date balls",
	"jalebi":                    "fresh fruit",
	"gulab jamun":               "fresh fruit",
	"rasgulla":                  "fresh fruit",
	"barfi":                     "date balls",

	// Prepared Foods
	"fast food":                  "home-cooked meal",
	"burgers":                    "homemade turkey burgers",
	"cheeseburger":               "turkey burger",
	"hamburger":                  "turkey burger",
	"fried rice":                 "vegetable brown rice",
	"kottu":                      "vegetable brown rice",
	"chicken kottu":              "vegetable brown rice",
	"cheese kottu":               "vegetable brown rice",
	"fried noodles":              "vegetable soba noodles",
	"chow mein":                  "vegetable soba noodles",
	"lo mein":                    "brown rice noodles",
	"pad thai":                   "brown rice noodle salad",
	"sweet and sour chicken":     "chicken stir fry",
	"orange chicken":             "grilled chicken",
	"general tso chicken":        "chicken stir fry",
	"butter chicken":             "tandoori chicken",
	"chicken tikka masala":       "tandoori chicken",
	"korma":                      "dhal curry",
	"biryani":                    "brown rice pilaf",
	"chicken biryani":            "brown rice chicken pilaf",
	"lamprais":                   "brown rice with curry",
	"devilled chicken":           "grilled chicken",
	"devilled prawns":            "grilled prawns",
	"hot butter cuttlefish":      "grilled cuttlefish",
	"fried calamari":             "grilled calamari",
	"chinese rolls":              "fresh spring rolls",
	"patties":                    "baked vegetable patties",
	"cutlets":                    "baked fish cakes",
	"vadai":                      "baked lentil patties",
	"isso vadai":                 "baked lentil patties",
	"hoppers":                    "red rice hoppers",
	"egg hoppers":                "red rice egg hoppers",
	"roti":                       "whole wheat roti",
	"pol roti":                   "kurakkan roti",
	"godamba roti":               "whole wheat roti",
	"parotta":                    "whole wheat roti",
	"puri":                       "whole wheat chapati",
	"bhatura":                    "whole wheat chapati",
	"pakora":                     "roasted vegetables",
	"bhaji":                      "roasted vegetables",
	"onion bhaji":                "roasted onions",
	"tempura":                    "steamed vegetables",
	"fried tofu":                 "baked tofu",
	"fried dumplings":            "steamed dumplings",
	"potstickers":                "steamed dumplings",
	"egg rolls":                  "fresh spring rolls",
	"instant ramen":              "soba noodle soup",
	"cup of noodles":             "vegetable noodle soup",
	"ready meals":                "homemade meal prep",
	"microwave meals":            "homemade meal prep",
	"frozen meals":               "homemade meal prep",
	"canned pasta":               "whole wheat pasta",
	"pot noodles":                "whole grain noodles",
	"lasagna":                    "vegetable lasagna",
	"beef lasagna":               "vegetable lasagna",
	"quiche":                     "vegetable frittata",
	"pasties":                    "whole wheat veggie wraps",
	"calzone":                    "whole wheat veggie wrap",
	"hot pockets":                "whole wheat veggie wraps",
	"corn dogs":                  "grilled chicken skewers",
	"chicken burger":             "grilled chicken sandwich",
	"fish burger":                "grilled fish sandwich",
	"fried sandwich":             "grilled sandwich",
	"club sandwich":              "grilled chicken wrap",
	"grilled cheese":             "whole grain veggie sandwich",
	"cheese toast":               "avocado toast",
	"french toast":               "whole grain toast",
	"pancakes":                   "whole grain pancakes",
	"waffles":                    "whole grain waffles",
	"crepes":                     "whole wheat crepes",
	"fried eggs":                 "boiled eggs",
	"scrambled eggs with cheese": "scrambled egg whites",
	"omelette with cheese":       "vegetable omelette",
	"full english breakfast":     "vegetable omelette",
	"hash brown patties":         "roasted potatoes",
	"loaded fries":               "baked potato wedges",
	"poutine":                    "baked potato wedges",
	"cheese fries":               "baked sweet potato fries",
	"chili cheese fries":         "baked sweet potato fries",
	"mashed potatoes":            "mashed cauliflower",
	"potato salad":               "green salad",
	"coleslaw":                   "vinegar slaw",
	"macaroni salad":             "quinoa salad",
	"creamy pasta":               "whole wheat pasta primavera",
	"carbonara":                  "whole wheat pasta primavera",
	"fettuccine alfredo":         "whole wheat pasta primavera",
	"garlic butter":              "olive oil and garlic",
	"nacho platter":              "veggie platter",
	"buffalo wings":              "grilled chicken breast",
	"wings":                      "grilled chicken breast",
	"kebab":                      "grilled chicken skewers",
	"doner kebab":                "grilled chicken wrap",
	"shawarma":                   "grilled chicken wrap",
	"gyros":                      "grilled chicken pita",
	"tacos":                      "whole wheat soft tacos",
	"burritos":                   "burrito bowl",
	"quesadilla":                 "whole wheat veggie wrap",
	"chimichanga":                "burrito bowl",
	"fried plantains":            "baked plantains",
	"fried yams":                 "baked yams",
	"fried cassava":              "boiled cassava",
	"manioc chips":               "boiled manioc",
	"fried potatoes":             "baked potatoes",
	"chips and dip":              "veggie sticks and hummus",
}
