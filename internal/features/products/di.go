package products

var productRepository = &ProductRepository{}

var productService = &ProductService{
	productRepository: productRepository,
}

var productController = &ProductController{
	productService: productService,
}

func GetProductService() *ProductService {
	return productService
}

func GetProductController() *ProductController {
	return productController
}
