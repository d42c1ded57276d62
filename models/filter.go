package models

import (
	"net/url"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
)

// ProductFilter is the allow-listed exact-match filter accepted by the product list.
type ProductFilter struct {
	NameTR        string
	NameAR        string
	DescriptionTR string
	DescriptionAR string
}

var filterFields = map[string]func(f *ProductFilter, v string){
	"nameTR":        func(f *ProductFilter, v string) { f.NameTR = v },
	"nameAR":        func(f *ProductFilter, v string) { f.NameAR = v },
	"descriptionTR": func(f *ProductFilter, v string) { f.DescriptionTR = v },
	"descriptionAR": func(f *ProductFilter, v string) { f.DescriptionAR = v },
}

// ParseProductFilter rejects any query key outside the allow-list and any repeated key.
func ParseProductFilter(query url.Values) (ProductFilter, error) {
	var f ProductFilter

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		set, ok := filterFields[k]
		if !ok {
			return ProductFilter{}, errs.Validation("unsupported filter field %q", k)
		}
		values := query[k]
		if len(values) != 1 {
			return ProductFilter{}, errs.Validation("filter field %q must be given once", k)
		}
		set(&f, values[0])
	}
	return f, nil
}

// BSON renders the filter; an empty filter matches every product.
func (f ProductFilter) BSON() bson.M {
	m := bson.M{}
	if f.NameTR != "" {
		m["nameTR"] = f.NameTR
	}
	if f.NameAR != "" {
		m["nameAR"] = f.NameAR
	}
	if f.DescriptionTR != "" {
		m["descriptionTR"] = f.DescriptionTR
	}
	if f.DescriptionAR != "" {
		m["descriptionAR"] = f.DescriptionAR
	}
	return m
}

// Match is the in-memory equivalent of BSON.
func (f ProductFilter) Match(p Product) bool {
	return (f.NameTR == "" || f.NameTR == p.NameTR) &&
		(f.NameAR == "" || f.NameAR == p.NameAR) &&
		(f.DescriptionTR == "" || f.DescriptionTR == p.DescriptionTR) &&
		(f.DescriptionAR == "" || f.DescriptionAR == p.DescriptionAR)
}
