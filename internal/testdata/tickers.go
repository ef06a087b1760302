// Copyright 2024 The Cockroach Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testdata holds fixed symbol sets shared by the mph test suite.
package testdata

// Tickers is a set of 100 real exchange ticker symbols, each padded with
// trailing spaces to exactly 8 bytes. It is large enough, and irregular
// enough in its byte distribution, to push construction past the
// pext_direct<7> and pext_direct<8> candidates; the default cascade settles
// on pext_direct<16>.
var Tickers = []string{
	"III     ", "AGM-C   ", "LOPE    ", "FEMS    ", "IEA     ",
	"VYMI    ", "BHK     ", "SIEB    ", "DGBP    ", "INFN    ",
	"USRT    ", "BCOR    ", "TWM     ", "BVSN    ", "STBA    ",
	"GPK     ", "LVHD    ", "FTEK    ", "GLBS    ", "CUBB    ",
	"LRCX    ", "HTGM    ", "RYN     ", "IPG     ", "PNNTG   ",
	"ZIG     ", "IVR-A   ", "INVA    ", "MNE     ", "KRA     ",
	"BRMK    ", "ARKG    ", "FFR     ", "QTRX    ", "XTN     ",
	"BAC-A   ", "CYBE    ", "ETJ     ", "JHCS    ", "RBCAA   ",
	"GDS     ", "WTID    ", "TCO     ", "BWA     ", "MIE     ",
	"GENY    ", "TDOC    ", "MCRO    ", "QFIN    ", "NBTB    ",
	"PWC     ", "FQAL    ", "NJAN    ", "IWB     ", "GXGXW   ",
	"EDUC    ", "RETL    ", "VIACA   ", "KLDO    ", "NEE-I   ",
	"FBC     ", "JW.A    ", "BSMX    ", "FMNB    ", "EXR     ",
	"TAC     ", "FDL     ", "SWIR    ", "CLWT    ", "LMHB    ",
	"IRTC    ", "CDMO    ", "HMLP-A  ", "LVUS    ", "UMRX    ",
	"GJH     ", "FRME    ", "CEIX    ", "IHD     ", "GHSI    ",
	"DCP-B   ", "SB      ", "DSE     ", "CPRT    ", "NRZ     ",
	"VLYPO   ", "TDAC    ", "ZXZZT   ", "IWX     ", "NCSM    ",
	"WIRE    ", "SFST    ", "EWD     ", "DEACW   ", "TRPX    ",
	"UCTT    ", "ZAZZT   ", "CYD     ", "NURE    ", "WEAT    ",
}
