package predicates

// InCircleFast returns the naive lifted determinant for the in-circle test:
// positive if pd lies inside the circle through pa, pb, pc (given in
// counterclockwise order), negative outside, zero on the circle. No roundoff
// protection.
func InCircleFast(pa, pb, pc, pd [2]float64) float64 {
	adx := pa[0] - pd[0]
	ady := pa[1] - pd[1]
	bdx := pb[0] - pd[0]
	bdy := pb[1] - pd[1]
	cdx := pc[0] - pd[0]
	cdy := pc[1] - pd[1]

	abdet := adx*bdy - bdx*ady
	bcdet := bdx*cdy - cdx*bdy
	cadet := cdx*ady - adx*cdy
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	return alift*bcdet + blift*cadet + clift*abdet
}

// InCircle returns a value whose sign says exactly where pd sits relative to
// the circumcircle of pa, pb, pc: positive inside, negative outside, zero on
// the circle. pa, pb, pc must wind counterclockwise or the sign is reversed.
// Inputs with max(|x|,|y|) below about 2^990 stay clear of overflow in the
// intermediate expansions.
func InCircle(pa, pb, pc, pd [2]float64) float64 {
	ensureInit()

	adx := pa[0] - pd[0]
	bdx := pb[0] - pd[0]
	cdx := pc[0] - pd[0]
	ady := pa[1] - pd[1]
	bdy := pb[1] - pd[1]
	cdy := pc[1] - pd[1]

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (abs(bdxcdy)+abs(cdxbdy))*alift +
		(abs(cdxady)+abs(adxcdy))*blift +
		(abs(adxbdy)+abs(bdxady))*clift
	errbound := iccerrboundA * permanent
	if det > errbound || -det > errbound {
		return det
	}

	return inCircleAdapt(pa, pb, pc, pd, permanent)
}

// inCircleAdapt rebuilds the lifted determinant exactly, one correction layer
// at a time. The worst case composes every tail interaction into an expansion
// of up to 1152 components, whose top component carries the true sign.
func inCircleAdapt(pa, pb, pc, pd [2]float64, permanent float64) float64 {
	var bc, ca, ab [4]float64
	var axbc, aybc, bxca, byca, cxab, cyab [8]float64
	var axxbc, ayybc, bxxca, byyca, cxxab, cyyab [16]float64
	var adet, bdet, cdet [32]float64
	var abdet [64]float64
	var fin1, fin2 [1152]float64

	adx := pa[0] - pd[0]
	bdx := pb[0] - pd[0]
	cdx := pc[0] - pd[0]
	ady := pa[1] - pd[1]
	bdy := pb[1] - pd[1]
	cdy := pc[1] - pd[1]

	bdxcdy1, bdxcdy0 := twoProduct(bdx, cdy)
	cdxbdy1, cdxbdy0 := twoProduct(cdx, bdy)
	bc[3], bc[2], bc[1], bc[0] = twoTwoDiff(bdxcdy1, bdxcdy0, cdxbdy1, cdxbdy0)
	axbclen := scaleExpansionZeroelim(bc[:], adx, axbc[:])
	axxbclen := scaleExpansionZeroelim(axbc[:axbclen], adx, axxbc[:])
	aybclen := scaleExpansionZeroelim(bc[:], ady, aybc[:])
	ayybclen := scaleExpansionZeroelim(aybc[:aybclen], ady, ayybc[:])
	alen := fastExpansionSumZeroelim(axxbc[:axxbclen], ayybc[:ayybclen], adet[:])

	cdxady1, cdxady0 := twoProduct(cdx, ady)
	adxcdy1, adxcdy0 := twoProduct(adx, cdy)
	ca[3], ca[2], ca[1], ca[0] = twoTwoDiff(cdxady1, cdxady0, adxcdy1, adxcdy0)
	bxcalen := scaleExpansionZeroelim(ca[:], bdx, bxca[:])
	bxxcalen := scaleExpansionZeroelim(bxca[:bxcalen], bdx, bxxca[:])
	bycalen := scaleExpansionZeroelim(ca[:], bdy, byca[:])
	byycalen := scaleExpansionZeroelim(byca[:bycalen], bdy, byyca[:])
	blen := fastExpansionSumZeroelim(bxxca[:bxxcalen], byyca[:byycalen], bdet[:])

	adxbdy1, adxbdy0 := twoProduct(adx, bdy)
	bdxady1, bdxady0 := twoProduct(bdx, ady)
	ab[3], ab[2], ab[1], ab[0] = twoTwoDiff(adxbdy1, adxbdy0, bdxady1, bdxady0)
	cxablen := scaleExpansionZeroelim(ab[:], cdx, cxab[:])
	cxxablen := scaleExpansionZeroelim(cxab[:cxablen], cdx, cxxab[:])
	cyablen := scaleExpansionZeroelim(ab[:], cdy, cyab[:])
	cyyablen := scaleExpansionZeroelim(cyab[:cyablen], cdy, cyyab[:])
	clen := fastExpansionSumZeroelim(cxxab[:cxxablen], cyyab[:cyyablen], cdet[:])

	ablen := fastExpansionSumZeroelim(adet[:alen], bdet[:blen], abdet[:])
	finlength := fastExpansionSumZeroelim(abdet[:ablen], cdet[:clen], fin1[:])

	det := estimate(fin1[:finlength])
	errbound := iccerrboundB * permanent
	if det >= errbound || -det >= errbound {
		return det
	}

	adxtail := twoDiffTail(pa[0], pd[0], adx)
	adytail := twoDiffTail(pa[1], pd[1], ady)
	bdxtail := twoDiffTail(pb[0], pd[0], bdx)
	bdytail := twoDiffTail(pb[1], pd[1], bdy)
	cdxtail := twoDiffTail(pc[0], pd[0], cdx)
	cdytail := twoDiffTail(pc[1], pd[1], cdy)
	if adxtail == 0.0 && bdxtail == 0.0 && cdxtail == 0.0 &&
		adytail == 0.0 && bdytail == 0.0 && cdytail == 0.0 {
		return det
	}

	errbound = iccerrboundC*permanent + resulterrbound*abs(det)
	det += ((adx*adx+ady*ady)*((bdx*cdytail+cdy*bdxtail)-(bdy*cdxtail+cdx*bdytail)) +
		2.0*(adx*adxtail+ady*adytail)*(bdx*cdy-bdy*cdx)) +
		((bdx*bdx+bdy*bdy)*((cdx*adytail+ady*cdxtail)-(cdy*adxtail+adx*cdytail)) +
			2.0*(bdx*bdxtail+bdy*bdytail)*(cdx*ady-cdy*adx)) +
		((cdx*cdx+cdy*cdy)*((adx*bdytail+bdy*adxtail)-(ady*bdxtail+bdx*adytail)) +
			2.0*(cdx*cdxtail+cdy*cdytail)*(adx*bdy-ady*bdx))
	if det >= errbound || -det >= errbound {
		return det
	}

	finnow := fin1[:]
	finother := fin2[:]

	var aa, bb, cc [4]float64
	if bdxtail != 0.0 || bdytail != 0.0 || cdxtail != 0.0 || cdytail != 0.0 {
		adxadx1, adxadx0 := square(adx)
		adyady1, adyady0 := square(ady)
		aa[3], aa[2], aa[1], aa[0] = twoTwoSum(adxadx1, adxadx0, adyady1, adyady0)
	}
	if cdxtail != 0.0 || cdytail != 0.0 || adxtail != 0.0 || adytail != 0.0 {
		bdxbdx1, bdxbdx0 := square(bdx)
		bdybdy1, bdybdy0 := square(bdy)
		bb[3], bb[2], bb[1], bb[0] = twoTwoSum(bdxbdx1, bdxbdx0, bdybdy1, bdybdy0)
	}
	if adxtail != 0.0 || adytail != 0.0 || bdxtail != 0.0 || bdytail != 0.0 {
		cdxcdx1, cdxcdx0 := square(cdx)
		cdycdy1, cdycdy0 := square(cdy)
		cc[3], cc[2], cc[1], cc[0] = twoTwoSum(cdxcdx1, cdxcdx0, cdycdy1, cdycdy0)
	}

	var temp8 [8]float64
	var temp16a, temp16b, temp16c [16]float64
	var temp32a, temp32b [32]float64
	var temp48 [48]float64
	var temp64 [64]float64
	var axtbc, aytbc, bxtca, bytca, cxtab, cytab [8]float64
	var axtbclen, aytbclen, bxtcalen, bytcalen, cxtablen, cytablen int

	if adxtail != 0.0 {
		axtbclen = scaleExpansionZeroelim(bc[:], adxtail, axtbc[:])
		temp16alen := scaleExpansionZeroelim(axtbc[:axtbclen], 2.0*adx, temp16a[:])

		axtcclen := scaleExpansionZeroelim(cc[:], adxtail, temp8[:])
		temp16blen := scaleExpansionZeroelim(temp8[:axtcclen], bdy, temp16b[:])

		axtbblen := scaleExpansionZeroelim(bb[:], adxtail, temp8[:])
		temp16clen := scaleExpansionZeroelim(temp8[:axtbblen], -cdy, temp16c[:])

		temp32alen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32a[:])
		temp48len := fastExpansionSumZeroelim(temp16c[:temp16clen], temp32a[:temp32alen], temp48[:])
		finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
		finnow, finother = finother, finnow
	}
	if adytail != 0.0 {
		aytbclen = scaleExpansionZeroelim(bc[:], adytail, aytbc[:])
		temp16alen := scaleExpansionZeroelim(aytbc[:aytbclen], 2.0*ady, temp16a[:])

		aytbblen := scaleExpansionZeroelim(bb[:], adytail, temp8[:])
		temp16blen := scaleExpansionZeroelim(temp8[:aytbblen], cdx, temp16b[:])

		aytcclen := scaleExpansionZeroelim(cc[:], adytail, temp8[:])
		temp16clen := scaleExpansionZeroelim(temp8[:aytcclen], -bdx, temp16c[:])

		temp32alen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32a[:])
		temp48len := fastExpansionSumZeroelim(temp16c[:temp16clen], temp32a[:temp32alen], temp48[:])
		finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
		finnow, finother = finother, finnow
	}
	if bdxtail != 0.0 {
		bxtcalen = scaleExpansionZeroelim(ca[:], bdxtail, bxtca[:])
		temp16alen := scaleExpansionZeroelim(bxtca[:bxtcalen], 2.0*bdx, temp16a[:])

		bxtaalen := scaleExpansionZeroelim(aa[:], bdxtail, temp8[:])
		temp16blen := scaleExpansionZeroelim(temp8[:bxtaalen], cdy, temp16b[:])

		bxtcclen := scaleExpansionZeroelim(cc[:], bdxtail, temp8[:])
		temp16clen := scaleExpansionZeroelim(temp8[:bxtcclen], -ady, temp16c[:])

		temp32alen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32a[:])
		temp48len := fastExpansionSumZeroelim(temp16c[:temp16clen], temp32a[:temp32alen], temp48[:])
		finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
		finnow, finother = finother, finnow
	}
	if bdytail != 0.0 {
		bytcalen = scaleExpansionZeroelim(ca[:], bdytail, bytca[:])
		temp16alen := scaleExpansionZeroelim(bytca[:bytcalen], 2.0*bdy, temp16a[:])

		bytcclen := scaleExpansionZeroelim(cc[:], bdytail, temp8[:])
		temp16blen := scaleExpansionZeroelim(temp8[:bytcclen], adx, temp16b[:])

		bytaalen := scaleExpansionZeroelim(aa[:], bdytail, temp8[:])
		temp16clen := scaleExpansionZeroelim(temp8[:bytaalen], -cdx, temp16c[:])

		temp32alen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32a[:])
		temp48len := fastExpansionSumZeroelim(temp16c[:temp16clen], temp32a[:temp32alen], temp48[:])
		finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
		finnow, finother = finother, finnow
	}
	if cdxtail != 0.0 {
		cxtablen = scaleExpansionZeroelim(ab[:], cdxtail, cxtab[:])
		temp16alen := scaleExpansionZeroelim(cxtab[:cxtablen], 2.0*cdx, temp16a[:])

		cxtbblen := scaleExpansionZeroelim(bb[:], cdxtail, temp8[:])
		temp16blen := scaleExpansionZeroelim(temp8[:cxtbblen], ady, temp16b[:])

		cxtaalen := scaleExpansionZeroelim(aa[:], cdxtail, temp8[:])
		temp16clen := scaleExpansionZeroelim(temp8[:cxtaalen], -bdy, temp16c[:])

		temp32alen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32a[:])
		temp48len := fastExpansionSumZeroelim(temp16c[:temp16clen], temp32a[:temp32alen], temp48[:])
		finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
		finnow, finother = finother, finnow
	}
	if cdytail != 0.0 {
		cytablen = scaleExpansionZeroelim(ab[:], cdytail, cytab[:])
		temp16alen := scaleExpansionZeroelim(cytab[:cytablen], 2.0*cdy, temp16a[:])

		cytaalen := scaleExpansionZeroelim(aa[:], cdytail, temp8[:])
		temp16blen := scaleExpansionZeroelim(temp8[:cytaalen], bdx, temp16b[:])

		cytbblen := scaleExpansionZeroelim(bb[:], cdytail, temp8[:])
		temp16clen := scaleExpansionZeroelim(temp8[:cytbblen], -adx, temp16c[:])

		temp32alen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32a[:])
		temp48len := fastExpansionSumZeroelim(temp16c[:temp16clen], temp32a[:temp32alen], temp48[:])
		finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
		finnow, finother = finother, finnow
	}

	var u, v [4]float64
	var bct, cat, abt [8]float64
	var bctt, catt, abtt [4]float64
	var axtbct, aytbct, bxtcat, bytcat, cxtabt, cytabt [16]float64
	var axtbctt, aytbctt, bxtcatt, bytcatt, cxtabtt, cytabtt [8]float64

	if adxtail != 0.0 || adytail != 0.0 {
		var bctlen, bcttlen int
		if bdxtail != 0.0 || bdytail != 0.0 || cdxtail != 0.0 || cdytail != 0.0 {
			ti1, ti0 := twoProduct(bdxtail, cdy)
			tj1, tj0 := twoProduct(bdx, cdytail)
			u[3], u[2], u[1], u[0] = twoTwoSum(ti1, ti0, tj1, tj0)
			ti1, ti0 = twoProduct(cdxtail, -bdy)
			tj1, tj0 = twoProduct(cdx, -bdytail)
			v[3], v[2], v[1], v[0] = twoTwoSum(ti1, ti0, tj1, tj0)
			bctlen = fastExpansionSumZeroelim(u[:], v[:], bct[:])

			ti1, ti0 = twoProduct(bdxtail, cdytail)
			tj1, tj0 = twoProduct(cdxtail, bdytail)
			bctt[3], bctt[2], bctt[1], bctt[0] = twoTwoDiff(ti1, ti0, tj1, tj0)
			bcttlen = 4
		} else {
			bct[0] = 0.0
			bctlen = 1
			bctt[0] = 0.0
			bcttlen = 1
		}

		if adxtail != 0.0 {
			temp16alen := scaleExpansionZeroelim(axtbc[:axtbclen], adxtail, temp16a[:])
			axtbctlen := scaleExpansionZeroelim(bct[:bctlen], adxtail, axtbct[:])
			temp32alen := scaleExpansionZeroelim(axtbct[:axtbctlen], 2.0*adx, temp32a[:])
			temp48len := fastExpansionSumZeroelim(temp16a[:temp16alen], temp32a[:temp32alen], temp48[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
			finnow, finother = finother, finnow
			if bdytail != 0.0 {
				temp8len := scaleExpansionZeroelim(cc[:], adxtail, temp8[:])
				temp16alen = scaleExpansionZeroelim(temp8[:temp8len], bdytail, temp16a[:])
				finlength = fastExpansionSumZeroelim(finnow[:finlength], temp16a[:temp16alen], finother)
				finnow, finother = finother, finnow
			}
			if cdytail != 0.0 {
				temp8len := scaleExpansionZeroelim(bb[:], -adxtail, temp8[:])
				temp16alen = scaleExpansionZeroelim(temp8[:temp8len], cdytail, temp16a[:])
				finlength = fastExpansionSumZeroelim(finnow[:finlength], temp16a[:temp16alen], finother)
				finnow, finother = finother, finnow
			}

			temp32alen = scaleExpansionZeroelim(axtbct[:axtbctlen], adxtail, temp32a[:])
			axtbcttlen := scaleExpansionZeroelim(bctt[:bcttlen], adxtail, axtbctt[:])
			temp16alen = scaleExpansionZeroelim(axtbctt[:axtbcttlen], 2.0*adx, temp16a[:])
			temp16blen := scaleExpansionZeroelim(axtbctt[:axtbcttlen], adxtail, temp16b[:])
			temp32blen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32b[:])
			temp64len := fastExpansionSumZeroelim(temp32a[:temp32alen], temp32b[:temp32blen], temp64[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp64[:temp64len], finother)
			finnow, finother = finother, finnow
		}
		if adytail != 0.0 {
			temp16alen := scaleExpansionZeroelim(aytbc[:aytbclen], adytail, temp16a[:])
			aytbctlen := scaleExpansionZeroelim(bct[:bctlen], adytail, aytbct[:])
			temp32alen := scaleExpansionZeroelim(aytbct[:aytbctlen], 2.0*ady, temp32a[:])
			temp48len := fastExpansionSumZeroelim(temp16a[:temp16alen], temp32a[:temp32alen], temp48[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
			finnow, finother = finother, finnow

			temp32alen = scaleExpansionZeroelim(aytbct[:aytbctlen], adytail, temp32a[:])
			aytbcttlen := scaleExpansionZeroelim(bctt[:bcttlen], adytail, aytbctt[:])
			temp16alen = scaleExpansionZeroelim(aytbctt[:aytbcttlen], 2.0*ady, temp16a[:])
			temp16blen := scaleExpansionZeroelim(aytbctt[:aytbcttlen], adytail, temp16b[:])
			temp32blen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32b[:])
			temp64len := fastExpansionSumZeroelim(temp32a[:temp32alen], temp32b[:temp32blen], temp64[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp64[:temp64len], finother)
			finnow, finother = finother, finnow
		}
	}
	if bdxtail != 0.0 || bdytail != 0.0 {
		var catlen, cattlen int
		if cdxtail != 0.0 || cdytail != 0.0 || adxtail != 0.0 || adytail != 0.0 {
			ti1, ti0 := twoProduct(cdxtail, ady)
			tj1, tj0 := twoProduct(cdx, adytail)
			u[3], u[2], u[1], u[0] = twoTwoSum(ti1, ti0, tj1, tj0)
			ti1, ti0 = twoProduct(adxtail, -cdy)
			tj1, tj0 = twoProduct(adx, -cdytail)
			v[3], v[2], v[1], v[0] = twoTwoSum(ti1, ti0, tj1, tj0)
			catlen = fastExpansionSumZeroelim(u[:], v[:], cat[:])

			ti1, ti0 = twoProduct(cdxtail, adytail)
			tj1, tj0 = twoProduct(adxtail, cdytail)
			catt[3], catt[2], catt[1], catt[0] = twoTwoDiff(ti1, ti0, tj1, tj0)
			cattlen = 4
		} else {
			cat[0] = 0.0
			catlen = 1
			catt[0] = 0.0
			cattlen = 1
		}

		if bdxtail != 0.0 {
			temp16alen := scaleExpansionZeroelim(bxtca[:bxtcalen], bdxtail, temp16a[:])
			bxtcatlen := scaleExpansionZeroelim(cat[:catlen], bdxtail, bxtcat[:])
			temp32alen := scaleExpansionZeroelim(bxtcat[:bxtcatlen], 2.0*bdx, temp32a[:])
			temp48len := fastExpansionSumZeroelim(temp16a[:temp16alen], temp32a[:temp32alen], temp48[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
			finnow, finother = finother, finnow
			if cdytail != 0.0 {
				temp8len := scaleExpansionZeroelim(aa[:], bdxtail, temp8[:])
				temp16alen = scaleExpansionZeroelim(temp8[:temp8len], cdytail, temp16a[:])
				finlength = fastExpansionSumZeroelim(finnow[:finlength], temp16a[:temp16alen], finother)
				finnow, finother = finother, finnow
			}
			if adytail != 0.0 {
				temp8len := scaleExpansionZeroelim(cc[:], -bdxtail, temp8[:])
				temp16alen = scaleExpansionZeroelim(temp8[:temp8len], adytail, temp16a[:])
				finlength = fastExpansionSumZeroelim(finnow[:finlength], temp16a[:temp16alen], finother)
				finnow, finother = finother, finnow
			}

			temp32alen = scaleExpansionZeroelim(bxtcat[:bxtcatlen], bdxtail, temp32a[:])
			bxtcattlen := scaleExpansionZeroelim(catt[:cattlen], bdxtail, bxtcatt[:])
			temp16alen = scaleExpansionZeroelim(bxtcatt[:bxtcattlen], 2.0*bdx, temp16a[:])
			temp16blen := scaleExpansionZeroelim(bxtcatt[:bxtcattlen], bdxtail, temp16b[:])
			temp32blen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32b[:])
			temp64len := fastExpansionSumZeroelim(temp32a[:temp32alen], temp32b[:temp32blen], temp64[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp64[:temp64len], finother)
			finnow, finother = finother, finnow
		}
		if bdytail != 0.0 {
			temp16alen := scaleExpansionZeroelim(bytca[:bytcalen], bdytail, temp16a[:])
			bytcatlen := scaleExpansionZeroelim(cat[:catlen], bdytail, bytcat[:])
			temp32alen := scaleExpansionZeroelim(bytcat[:bytcatlen], 2.0*bdy, temp32a[:])
			temp48len := fastExpansionSumZeroelim(temp16a[:temp16alen], temp32a[:temp32alen], temp48[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
			finnow, finother = finother, finnow

			temp32alen = scaleExpansionZeroelim(bytcat[:bytcatlen], bdytail, temp32a[:])
			bytcattlen := scaleExpansionZeroelim(catt[:cattlen], bdytail, bytcatt[:])
			temp16alen = scaleExpansionZeroelim(bytcatt[:bytcattlen], 2.0*bdy, temp16a[:])
			temp16blen := scaleExpansionZeroelim(bytcatt[:bytcattlen], bdytail, temp16b[:])
			temp32blen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32b[:])
			temp64len := fastExpansionSumZeroelim(temp32a[:temp32alen], temp32b[:temp32blen], temp64[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp64[:temp64len], finother)
			finnow, finother = finother, finnow
		}
	}
	if cdxtail != 0.0 || cdytail != 0.0 {
		var abtlen, abttlen int
		if adxtail != 0.0 || adytail != 0.0 || bdxtail != 0.0 || bdytail != 0.0 {
			ti1, ti0 := twoProduct(adxtail, bdy)
			tj1, tj0 := twoProduct(adx, bdytail)
			u[3], u[2], u[1], u[0] = twoTwoSum(ti1, ti0, tj1, tj0)
			ti1, ti0 = twoProduct(bdxtail, -ady)
			tj1, tj0 = twoProduct(bdx, -adytail)
			v[3], v[2], v[1], v[0] = twoTwoSum(ti1, ti0, tj1, tj0)
			abtlen = fastExpansionSumZeroelim(u[:], v[:], abt[:])

			ti1, ti0 = twoProduct(adxtail, bdytail)
			tj1, tj0 = twoProduct(bdxtail, adytail)
			abtt[3], abtt[2], abtt[1], abtt[0] = twoTwoDiff(ti1, ti0, tj1, tj0)
			abttlen = 4
		} else {
			abt[0] = 0.0
			abtlen = 1
			abtt[0] = 0.0
			abttlen = 1
		}

		if cdxtail != 0.0 {
			temp16alen := scaleExpansionZeroelim(cxtab[:cxtablen], cdxtail, temp16a[:])
			cxtabtlen := scaleExpansionZeroelim(abt[:abtlen], cdxtail, cxtabt[:])
			temp32alen := scaleExpansionZeroelim(cxtabt[:cxtabtlen], 2.0*cdx, temp32a[:])
			temp48len := fastExpansionSumZeroelim(temp16a[:temp16alen], temp32a[:temp32alen], temp48[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
			finnow, finother = finother, finnow
			if adytail != 0.0 {
				temp8len := scaleExpansionZeroelim(bb[:], cdxtail, temp8[:])
				temp16alen = scaleExpansionZeroelim(temp8[:temp8len], adytail, temp16a[:])
				finlength = fastExpansionSumZeroelim(finnow[:finlength], temp16a[:temp16alen], finother)
				finnow, finother = finother, finnow
			}
			if bdytail != 0.0 {
				temp8len := scaleExpansionZeroelim(aa[:], -cdxtail, temp8[:])
				temp16alen = scaleExpansionZeroelim(temp8[:temp8len], bdytail, temp16a[:])
				finlength = fastExpansionSumZeroelim(finnow[:finlength], temp16a[:temp16alen], finother)
				finnow, finother = finother, finnow
			}

			temp32alen = scaleExpansionZeroelim(cxtabt[:cxtabtlen], cdxtail, temp32a[:])
			cxtabttlen := scaleExpansionZeroelim(abtt[:abttlen], cdxtail, cxtabtt[:])
			temp16alen = scaleExpansionZeroelim(cxtabtt[:cxtabttlen], 2.0*cdx, temp16a[:])
			temp16blen := scaleExpansionZeroelim(cxtabtt[:cxtabttlen], cdxtail, temp16b[:])
			temp32blen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32b[:])
			temp64len := fastExpansionSumZeroelim(temp32a[:temp32alen], temp32b[:temp32blen], temp64[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp64[:temp64len], finother)
			finnow, finother = finother, finnow
		}
		if cdytail != 0.0 {
			temp16alen := scaleExpansionZeroelim(cytab[:cytablen], cdytail, temp16a[:])
			cytabtlen := scaleExpansionZeroelim(abt[:abtlen], cdytail, cytabt[:])
			temp32alen := scaleExpansionZeroelim(cytabt[:cytabtlen], 2.0*cdy, temp32a[:])
			temp48len := fastExpansionSumZeroelim(temp16a[:temp16alen], temp32a[:temp32alen], temp48[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp48[:temp48len], finother)
			finnow, finother = finother, finnow

			temp32alen = scaleExpansionZeroelim(cytabt[:cytabtlen], cdytail, temp32a[:])
			cytabttlen := scaleExpansionZeroelim(abtt[:abttlen], cdytail, cytabtt[:])
			temp16alen = scaleExpansionZeroelim(cytabtt[:cytabttlen], 2.0*cdy, temp16a[:])
			temp16blen := scaleExpansionZeroelim(cytabtt[:cytabttlen], cdytail, temp16b[:])
			temp32blen := fastExpansionSumZeroelim(temp16a[:temp16alen], temp16b[:temp16blen], temp32b[:])
			temp64len := fastExpansionSumZeroelim(temp32a[:temp32alen], temp32b[:temp32blen], temp64[:])
			finlength = fastExpansionSumZeroelim(finnow[:finlength], temp64[:temp64len], finother)
			finnow, finother = finother, finnow
		}
	}

	return finnow[finlength-1]
}
