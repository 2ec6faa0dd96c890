package rules

// shelfLife is a default expiry window plus the store aisle the item
// belongs to.
type shelfLife struct {
	days  int
	aisle string
}

// defaultShelfLife maps item names to their typical shelf life in days.
var defaultShelfLife = map[string]shelfLife{
	// Dairy
	"milk":              {7, "Dairy"},
	"fresh milk":        {7, "Dairy"},
	"whole milk":        {7, "Dairy"},
	"full cream milk":   {7, "Dairy"},
	"low-fat milk":      {7, "Dairy"},
	"skim milk":         {7, "Dairy"},
	"lactose free milk": {10, "Dairy"},
	"uht milk":          {90, "Dairy"},
	"milk powder":       {365, "Dairy"},
	"buttermilk":        {10, "Dairy"},
	"almond milk":       {7, "Dairy"},
	"soy milk":          {7, "Dairy"},
	"oat milk":          {7, "Dairy"},
	"eggs":              {14, "Dairy"},
	"cheese":            {10, "Dairy"},
	"cheddar cheese":    {28, "Dairy"},
	"mozzarella":        {7, "Dairy"},
	"parmesan":          {60, "Dairy"},
	"cream cheese":      {14, "Dairy"},
	"cottage cheese":    {7, "Dairy"},
	"ricotta":           {7, "Dairy"},
	"feta":              {14, "Dairy"},
	"paneer":            {5, "Dairy"},
	"halloumi":          {30, "Dairy"},
	"butter":            {30, "Dairy"},
	"margarine":         {60, "Dairy"},
	"ghee":              {180, "Dairy"},
	"yogurt":            {7, "Dairy"},
	"yoghurt":           {7, "Dairy"},
	"greek yogurt":      {10, "Dairy"},
	"curd":              {7, "Dairy"},
	"buffalo curd":      {5, "Dairy"},
	"kefir":             {10, "Dairy"},
	"cream":             {5, "Dairy"},
	"heavy cream":       {10, "Dairy"},
	"whipping cream":    {7, "Dairy"},
	"sour cream":        {14, "Dairy"},
	"custard":           {4, "Dairy"},
	"pudding":           {5, "Dairy"},

	// Meat & Seafood
	"meat":           {3, "Meat & Seafood"},
	"chicken":        {2, "Meat & Seafood"},
	"chicken breast": {2, "Meat & Seafood"},
	"chicken thighs": {2, "Meat & Seafood"},
	"chicken wings":  {2, "Meat & Seafood"},
	"whole chicken":  {2, "Meat & Seafood"},
	"ground chicken": {1, "Meat & Seafood"},
	"beef":           {3, "Meat & Seafood"},
	"ground beef":    {2, "Meat & Seafood"},
	"minced beef":    {2, "Meat & Seafood"},
	"steak":          {3, "Meat & Seafood"},
	"pork":           {3, "Meat & Seafood"},
	"pork chops":     {3, "Meat & Seafood"},
	"ground pork":    {2, "Meat & Seafood"},
	"lamb":           {3, "Meat & Seafood"},
	"mutton":         {3, "Meat & Seafood"},
	"turkey":         {2, "Meat & Seafood"},
	"ground turkey":  {2, "Meat & Seafood"},
	"bacon":          {7, "Meat & Seafood"},
	"ham":            {5, "Meat & Seafood"},
	"sausage":        {3, "Meat & Seafood"},
	"sausages":       {3, "Meat & Seafood"},
	"hot dogs":       {10, "Meat & Seafood"},
	"salami":         {21, "Meat & Seafood"},
	"deli meat":      {5, "Meat & Seafood"},
	"pepperoni":      {21, "Meat & Seafood"},
	"liver":          {1, "Meat & Seafood"},
	"fish":           {2, "Meat & Seafood"},
	"fresh fish":     {2, "Meat & Seafood"},
	"salmon":         {2, "Meat & Seafood"},
	"tuna":           {2, "Meat & Seafood"},
	"tilapia":        {2, "Meat & Seafood"},
	"seer fish":      {2, "Meat & Seafood"},
	"sardines":       {2, "Meat & Seafood"},
	"mackerel":       {2, "Meat & Seafood"},
	"shrimp":         {2, "Meat & Seafood"},
	"prawns":         {2, "Meat & Seafood"},
	"crab":           {2, "Meat & Seafood"},
	"lobster":        {2, "Meat & Seafood"},
	"squid":          {2, "Meat & Seafood"},
	"cuttlefish":     {2, "Meat & Seafood"},
	"mussels":        {1, "Meat & Seafood"},
	"oysters":        {1, "Meat & Seafood"},
	"smoked salmon":  {10, "Meat & Seafood"},
	"dried fish":     {90, "Meat & Seafood"},
	"canned tuna":    {730, "Meat & Seafood"},
	"canned fish":    {730, "Meat & Seafood"},

	// Produce
	"vegetables":     {7, "Produce"},
	"fruits":         {5, "Produce"},
	"fruit":          {5, "Produce"},
	"apple":          {30, "Produce"},
	"apples":         {30, "Produce"},
	"banana":         {5, "Produce"},
	"bananas":        {5, "Produce"},
	"orange":         {21, "Produce"},
	"oranges":        {21, "Produce"},
	"lemon":          {21, "Produce"},
	"lemons":         {21, "Produce"},
	"lime":           {21, "Produce"},
	"limes":          {21, "Produce"},
	"grapes":         {7, "Produce"},
	"strawberries":   {4, "Produce"},
	"blueberries":    {7, "Produce"},
	"raspberries":    {3, "Produce"},
	"berries":        {4, "Produce"},
	"cherries":       {5, "Produce"},
	"peach":          {4, "Produce"},
	"peaches":        {4, "Produce"},
	"pear":           {5, "Produce"},
	"pears":          {5, "Produce"},
	"plums":          {5, "Produce"},
	"mango":          {5, "Produce"},
	"mangoes":        {5, "Produce"},
	"papaya":         {5, "Produce"},
	"pineapple":      {5, "Produce"},
	"watermelon":     {7, "Produce"},
	"melon":          {5, "Produce"},
	"avocado":        {4, "Produce"},
	"avocados":       {4, "Produce"},
	"kiwi":           {7, "Produce"},
	"pomegranate":    {14, "Produce"},
	"jackfruit":      {3, "Produce"},
	"rambutan":       {4, "Produce"},
	"passion fruit":  {7, "Produce"},
	"guava":          {4, "Produce"},
	"tomato":         {7, "Produce"},
	"tomatoes":       {7, "Produce"},
	"potato":         {30, "Produce"},
	"potatoes":       {30, "Produce"},
	"sweet potato":   {30, "Produce"},
	"sweet potatoes": {30, "Produce"},
	"onion":          {30, "Produce"},
	"onions":         {30, "Produce"},
	"red onions":     {30, "Produce"},
	"shallots":       {30, "Produce"},
	"garlic":         {60, "Produce"},
	"ginger":         {21, "Produce"},
	"carrot":         {21, "Produce"},
	"carrots":        {21, "Produce"},
	"lettuce":        {5, "Produce"},
	"spinach":        {5, "Produce"},
	"kale":           {5, "Produce"},
	"cabbage":        {14, "Produce"},
	"broccoli":       {5, "Produce"},
	"cauliflower":    {7, "Produce"},
	"cucumber":       {7, "Produce"},
	"zucchini":       {7, "Produce"},
	"bell pepper":    {7, "Produce"},
	"bell peppers":   {7, "Produce"},
	"green chillies": {10, "Produce"},
	"chillies":       {10, "Produce"},
	"mushrooms":      {5, "Produce"},
	"corn":           {3, "Produce"},
	"green beans":    {5, "Produce"},
	"beans":          {5, "Produce"},
	"peas":           {4, "Produce"},
	"leeks":          {10, "Produce"},
	"celery":         {14, "Produce"},
	"asparagus":      {4, "Produce"},
	"eggplant":       {7, "Produce"},
	"brinjal":        {7, "Produce"},
	"okra":           {4, "Produce"},
	"pumpkin":        {30, "Produce"},
	"beetroot":       {14, "Produce"},
	"radish":         {10, "Produce"},
	"gotukola":       {2, "Produce"},
	"mukunuwenna":    {2, "Produce"},
	"curry leaves":   {7, "Produce"},
	"coriander":      {5, "Produce"},
	"cilantro":       {5, "Produce"},
	"parsley":        {7, "Produce"},
	"basil":          {5, "Produce"},
	"mint":           {5, "Produce"},
	"spring onions":  {5, "Produce"},
	"green onions":   {5, "Produce"},
	"coconut":        {7, "Produce"},
	"grated coconut": {2, "Produce"},
	"salad":          {3, "Produce"},
	"sprouts":        {3, "Produce"},

	// Bakery
	"bread":             {5, "Bakery"},
	"white bread":       {5, "Bakery"},
	"brown bread":       {5, "Bakery"},
	"whole wheat bread": {5, "Bakery"},
	"sandwich bread":    {5, "Bakery"},
	"sourdough":         {4, "Bakery"},
	"baguette":          {2, "Bakery"},
	"bagels":            {5, "Bakery"},
	"buns":              {4, "Bakery"},
	"rolls":             {4, "Bakery"},
	"burger buns":       {5, "Bakery"},
	"hot dog buns":      {5, "Bakery"},
	"croissants":        {3, "Bakery"},
	"muffins":           {4, "Bakery"},
	"cake":              {4, "Bakery"},
	"pastries":          {2, "Bakery"},
	"donuts":            {2, "Bakery"},
	"tortillas":         {14, "Bakery"},
	"pita bread":        {5, "Bakery"},
	"naan":              {4, "Bakery"},
	"roti":              {2, "Bakery"},
	"chapati":           {2, "Bakery"},
	"paratha":           {2, "Bakery"},
	"pizza dough":       {3, "Bakery"},
	"pizza base":        {7, "Bakery"},
	"crackers":          {180, "Bakery"},
	"biscuits":          {180, "Bakery"},
	"doughnuts":         {2, "Bakery"},

	// Pantry
	"rice":                {365, "Pantry"},
	"white rice":          {365, "Pantry"},
	"brown rice":          {180, "Pantry"},
	"basmati rice":        {365, "Pantry"},
	"samba rice":          {365, "Pantry"},
	"red rice":            {180, "Pantry"},
	"nadu rice":           {365, "Pantry"},
	"pasta":               {730, "Pantry"},
	"spaghetti":           {730, "Pantry"},
	"noodles":             {365, "Pantry"},
	"instant noodles":     {365, "Pantry"},
	"flour":               {180, "Pantry"},
	"wheat flour":         {180, "Pantry"},
	"rice flour":          {90, "Pantry"},
	"sugar":               {730, "Pantry"},
	"brown sugar":         {730, "Pantry"},
	"salt":                {1825, "Pantry"},
	"honey":               {730, "Pantry"},
	"jam":                 {180, "Pantry"},
	"peanut butter":       {90, "Pantry"},
	"oats":                {365, "Pantry"},
	"oatmeal":             {365, "Pantry"},
	"cereal":              {180, "Pantry"},
	"granola":             {180, "Pantry"},
	"lentils":             {365, "Pantry"},
	"dhal":                {365, "Pantry"},
	"red dhal":            {365, "Pantry"},
	"chickpeas":           {365, "Pantry"},
	"dried beans":         {365, "Pantry"},
	"canned beans":        {730, "Pantry"},
	"black beans":         {365, "Pantry"},
	"kidney beans":        {365, "Pantry"},
	"baked beans":         {730, "Pantry"},
	"canned tomatoes":     {365, "Pantry"},
	"tomato sauce":        {30, "Pantry"},
	"tomato paste":        {30, "Pantry"},
	"pasta sauce":         {10, "Pantry"},
	"ketchup":             {180, "Pantry"},
	"mayonnaise":          {60, "Pantry"},
	"mustard":             {365, "Pantry"},
	"soy sauce":           {730, "Pantry"},
	"vinegar":             {730, "Pantry"},
	"olive oil":           {365, "Pantry"},
	"vegetable oil":       {365, "Pantry"},
	"coconut oil":         {365, "Pantry"},
	"coconut milk":        {4, "Pantry"},
	"canned coconut milk": {730, "Pantry"},
	"coconut milk powder": {365, "Pantry"},
	"curry powder":        {365, "Pantry"},
	"chilli powder":       {365, "Pantry"},
	"turmeric":            {730, "Pantry"},
	"spices":              {365, "Pantry"},
	"stock cubes":         {365, "Pantry"},
	"chicken broth":       {5, "Pantry"},
	"soup":                {3, "Pantry"},
	"canned soup":         {730, "Pantry"},
	"hummus":              {7, "Pantry"},
	"salsa":               {14, "Pantry"},
	"tofu":                {5, "Pantry"},
	"tempeh":              {7, "Pantry"},
	"fish sauce":          {730, "Pantry"},
	"maple syrup":         {365, "Pantry"},
	"coffee":              {180, "Pantry"},
	"ground coffee":       {90, "Pantry"},
	"instant coffee":      {365, "Pantry"},
	"tea":                 {365, "Pantry"},
	"tea bags":            {365, "Pantry"},
	"green tea":           {365, "Pantry"},
	"cocoa powder":        {730, "Pantry"},
	"baking powder":       {365, "Pantry"},
	"yeast":               {120, "Pantry"},
	"cornflakes":          {180, "Pantry"},
	"baking soda":         {730, "Pantry"},

	// Frozen
	"ice cream":         {60, "Frozen"},
	"frozen yogurt":     {60, "Frozen"},
	"frozen vegetables": {240, "Frozen"},
	"frozen peas":       {240, "Frozen"},
	"frozen berries":    {240, "Frozen"},
	"frozen fruit":      {240, "Frozen"},
	"frozen pizza":      {180, "Frozen"},
	"frozen chicken":    {270, "Frozen"},
	"frozen fish":       {180, "Frozen"},
	"frozen prawns":     {180, "Frozen"},
	"frozen fries":      {240, "Frozen"},
	"frozen meals":      {90, "Frozen"},
	"ice cubes":         {365, "Frozen"},

	// Beverages
	"juice":           {7, "Beverages"},
	"orange juice":    {7, "Beverages"},
	"apple juice":     {7, "Beverages"},
	"fresh juice":     {2, "Beverages"},
	"water":           {365, "Beverages"},
	"bottled water":   {365, "Beverages"},
	"sparkling water": {365, "Beverages"},
	"soda":            {270, "Beverages"},
	"cola":            {270, "Beverages"},
	"beer":            {180, "Beverages"},
	"wine":            {1095, "Beverages"},
	"king coconut":    {5, "Beverages"},
	"coconut water":   {2, "Beverages"},
	"kombucha":        {30, "Beverages"},
	"smoothie":        {2, "Beverages"},

	// Snacks
	"chips":          {60, "Snacks"},
	"potato chips":   {60, "Snacks"},
	"tortilla chips": {60, "Snacks"},
	"popcorn":        {90, "Snacks"},
	"nuts":           {180, "Snacks"},
	"peanuts":        {180, "Snacks"},
	"cashews":        {180, "Snacks"},
	"almonds":        {365, "Snacks"},
	"dried fruits":   {180, "Snacks"},
	"raisins":        {180, "Snacks"},
	"cookies":        {60, "Snacks"},
	"chocolate":      {180, "Snacks"},
	"dark chocolate": {365, "Snacks"},
	"candy":          {365, "Snacks"},
	"licorice":       {365, "Snacks"},
	"pretzels":       {90, "Snacks"},
	"granola bars":   {180, "Snacks"},
	"rice cakes":     {180, "Snacks"},

	// Household
	"dish soap":         {730, "Household"},
	"detergent":         {730, "Household"},
	"laundry detergent": {730, "Household"},
	"paper towels":      {1825, "Household"},
	"toilet paper":      {1825, "Household"},
	"trash bags":        {1825, "Household"},
	"aluminum foil":     {1825, "Household"},
	"foil":              {1825, "Household"},
	"sponges":           {730, "Household"},
	"bleach":            {365, "Household"},
	"batteries":         {1825, "Household"},

	// Personal Care
	"shampoo":     {730, "Personal Care"},
	"conditioner": {730, "Personal Care"},
	"soap":        {1095, "Personal Care"},
	"toothpaste":  {730, "Personal Care"},
	"deodorant":   {730, "Personal Care"},
	"lotion":      {365, "Personal Care"},
	"sunscreen":   {365, "Personal Care"},
}
