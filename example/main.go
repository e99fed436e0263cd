package main

import (
	"encoding/json"
	"fmt"

	"github.com/Rahmatulah12/strfmt"
)

type Profile struct {
	CustomerName string `json:"customer_name"`
	Msisdn       string `json:"msisdn"`
	APIKey       string `json:"api_key"`
	Balance      int64  `json:"balance"`
}

func main() {
	name, _ := strfmt.Capitalize("john doe")
	fmt.Println(name)
	fmt.Println(strfmt.PascalCase("network_profile"))
	fmt.Println(strfmt.SnakeCase("customerType"))
	fmt.Println(strfmt.KebabCase("customerType"))
	fmt.Println(strfmt.Truncate("a very long transaction description", 20))

	msisdn, err := strfmt.Mask("081292021531")
	if err != nil {
		panic(err.Error())
	}
	fmt.Println(msisdn)

	r, err := strfmt.NewRedactor(
		strfmt.MaskRule{
			Field:  "api_key",
			Config: strfmt.NewMaskConfig(strfmt.WithPrefixLength(5), strfmt.WithSuffixLength(3)),
		},
		strfmt.MaskRule{
			Field:  "msisdn",
			Config: strfmt.DefaultMaskConfig(),
		},
		strfmt.MaskRule{
			Field:  "balance",
			Config: strfmt.MaskConfig{MaskCharCount: 5},
		},
	)
	if err != nil {
		panic(err.Error())
	}

	payload, err := json.Marshal(Profile{
		CustomerName: "John Doe",
		Msisdn:       "081292021531",
		APIKey:       "abcdefghijklmnopqrstuKKLLXX",
		Balance:      150000,
	})
	if err != nil {
		panic(err.Error())
	}

	redacted, err := r.RedactJSON(payload)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println(string(redacted))
}
