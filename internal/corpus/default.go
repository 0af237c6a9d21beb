// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"regexp"

	"pii-recognition/internal/validators/creditcard"
	"pii-recognition/internal/validators/dea"
	"pii-recognition/internal/validators/demographic"
	"pii-recognition/internal/validators/nationalid"
	"pii-recognition/internal/validators/network"
	"pii-recognition/internal/validators/personname"
	"pii-recognition/internal/validators/phone"
	"pii-recognition/internal/validators/ssn"
	"pii-recognition/internal/validators/vin"
)

// Structural patterns with no validator of their own.
var (
	emailPattern = regexp.MustCompile(`(?i)[a-z0-9_'][.'\\a-z0-9_+-]*[a-z0-9_']@[a-z0-9-]+(?:\.[a-z0-9-]+)*\.(?:com|edu|gov|org|net|ca)\b`)

	usPassportPattern = regexp.MustCompile(`\b[A-Z]\d{8}\b`)

	// Digits and the letters C F G H J K L M N P R T V W X Y Z; the first
	// character is always a letter.
	germanPassportPattern = regexp.MustCompile(`\b[CFGHJK][CFGHJKLMNPRTVWXYZ0-9]{8}\b`)

	streetAddressPattern = regexp.MustCompile(`(?i)\b\d{1,6}(?:\s+[a-z][a-z'.-]*){1,4}\s+(?:road|street|avenue|boulevard|lane|drive|way|court|plaza|terrace|close)\b`)
)

// Options supplies the collaborators some validators depend on.
type Options struct {
	// AreaCodes decides which US area codes are in service. Nil selects the
	// built-in table.
	AreaCodes phone.AreaCodeLookup

	// Tagger tags person name candidates. Nil disables person_name, since
	// no candidate can be confirmed without it.
	Tagger personname.Tagger
}

// Default builds the built-in corpus. The order of the returned categories
// is the order of keys in every output.
func Default(opts Options) *Corpus {
	categories := []Category{
		{
			Name:        "gender",
			Pattern:     demographic.GenderPattern,
			Validator:   demographic.NewGender(),
			Description: "Gender words, normalized to Female or Male",
			Group:       GroupDemographic,
		},
		{
			Name:        "email",
			Pattern:     emailPattern,
			Description: "Email addresses on common top-level domains",
			Group:       GroupContact,
		},
		{
			Name:        "intl_number",
			Pattern:     phone.IntlPattern,
			Description: "International phone numbers with a five digit subscriber part",
			Group:       GroupContact,
		},
		{
			Name:        "us_number",
			Pattern:     phone.USPattern,
			Validator:   phone.NewValidator(opts.AreaCodes),
			Description: "US phone numbers with an in-service geographic area code",
			Group:       GroupContact,
		},
		{
			Name:        "credit_card",
			Pattern:     creditcard.Pattern,
			Validator:   creditcard.NewValidator(),
			Description: "Payment card numbers passing the Luhn check",
			Group:       GroupPayment,
		},
		{
			Name:        "ssn",
			Pattern:     ssn.Pattern,
			Validator:   ssn.NewValidator(),
			Description: "US Social Security Numbers in issued ranges",
			Group:       GroupNationalID,
		},
		{
			Name:        "mac_address",
			Pattern:     network.MACPattern,
			Description: "MAC addresses",
			Group:       GroupNetwork,
		},
		{
			Name:        "mac_local",
			Pattern:     network.MACPattern,
			Validator:   network.LocalMAC{},
			Description: "Locally administered MAC addresses",
			Group:       GroupNetwork,
		},
		{
			Name:        "ipv4_address",
			Pattern:     network.IPv4Pattern,
			Description: "IPv4 addresses",
			Group:       GroupNetwork,
		},
		{
			Name:        "ipv6_address",
			Pattern:     network.IPv6Pattern,
			Validator:   network.IPv6{},
			Description: "IPv6 addresses, reported in canonical form",
			Group:       GroupNetwork,
			Bounded:     true,
		},
		{
			Name:        "vin",
			Pattern:     vin.Pattern,
			Validator:   vin.NewValidator(),
			Description: "Vehicle identification numbers with a valid check digit",
			Group:       GroupVehicle,
		},
		{
			Name:        "us_passport",
			Pattern:     usPassportPattern,
			Description: "US passport numbers",
			Group:       GroupTravel,
		},
		{
			Name:        "german_passport",
			Pattern:     germanPassportPattern,
			Description: "German passport numbers",
			Group:       GroupTravel,
		},
		{
			Name:        "street_address",
			Pattern:     streetAddressPattern,
			Description: "Street addresses ending in a common street suffix",
			Group:       GroupLocation,
		},
		{
			Name:        "age",
			Pattern:     demographic.AgePattern,
			Validator:   demographic.Age{},
			Description: "Stated ages below 111",
			Group:       GroupDemographic,
		},
	}

	if opts.Tagger != nil {
		categories = append(categories, Category{
			Name:        "person_name",
			Pattern:     personname.Pattern,
			Validator:   personname.NewValidator(opts.Tagger),
			Description: "Personal names, reduced to their noun tokens",
			Group:       GroupIdentity,
		})
	}

	categories = append(categories,
		Category{
			Name:        "us_dea",
			Pattern:     dea.Pattern,
			Validator:   dea.NewValidator(),
			Description: "US DEA registration numbers",
			Group:       GroupIdentity,
		},
		Category{
			Name:        "china_id",
			Pattern:     nationalid.ChinaPattern,
			Validator:   nationalid.China{},
			Description: "PRC resident identity numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "hong_kong_id",
			Pattern:     nationalid.HongKongPattern,
			Validator:   nationalid.HongKong{},
			Description: "Hong Kong identity card numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "south_korea_rrn",
			Pattern:     nationalid.SouthKoreaPattern,
			Validator:   nationalid.SouthKorea{},
			Description: "South Korean resident registration numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "sweden_personnummer",
			Pattern:     nationalid.SwedenPattern,
			Validator:   nationalid.Sweden{},
			Description: "Swedish personal identity numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "south_africa_id",
			Pattern:     nationalid.SouthAfricaPattern,
			Validator:   nationalid.SouthAfrica{},
			Description: "South African identity numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "australia_tfn",
			Pattern:     nationalid.AustraliaTFNPattern,
			Validator:   nationalid.AustraliaTFN{},
			Description: "Australian tax file numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "australia_medicare",
			Pattern:     nationalid.AustraliaMedicarePattern,
			Validator:   nationalid.AustraliaMedicare{},
			Description: "Australian Medicare card numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "spain_dni",
			Pattern:     nationalid.SpainPattern,
			Validator:   nationalid.SpainDNI{},
			Description: "Spanish DNI and NIE numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "norway_fnr",
			Pattern:     nationalid.NorwayPattern,
			Validator:   nationalid.Norway{},
			Description: "Norwegian birth numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "brazil_cpf",
			Pattern:     nationalid.BrazilCPFPattern,
			Validator:   nationalid.BrazilCPF{},
			Description: "Brazilian CPF numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "uk_nhs",
			Pattern:     nationalid.UKNHSPattern,
			Validator:   nationalid.UKNHS{},
			Description: "UK NHS numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "france_nir",
			Pattern:     nationalid.FrancePattern,
			Validator:   nationalid.FranceNIR{},
			Description: "French social security numbers",
			Group:       GroupNationalID,
		},
		Category{
			Name:        "singapore_nric",
			Pattern:     nationalid.SingaporePattern,
			Validator:   nationalid.Singapore{},
			Description: "Singapore NRIC and FIN numbers",
			Group:       GroupNationalID,
		},
	)

	c, err := New(categories...)
	if err != nil {
		panic("corpus: invalid built-in table: " + err.Error())
	}
	return c
}
