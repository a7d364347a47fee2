package sqlinline

const QInsertCardAsset = `--sql 33e7e932-a6c6-49f8-812d-13789ccb06cd
insert into card_assets (id, job_id, storage_key, format, width, height, bytes, checksum, created_at)
values ($1::uuid, $2::uuid, $3::text, $4::text, $5::int, $6::int, $7::bigint, $8::text, now());
`

const QSelectCardAssetByID = `--sql a93d091b-fa7d-491a-b420-4d58ac6f540e
select id, job_id, storage_key, format, width, height, bytes, checksum, created_at
from card_assets
where id = $1::uuid
limit 1;
`

const QListCardAssetsByJob = `--sql e3c44b1e-7bf4-43ea-95a4-d827d0cb1c23
select id, job_id, storage_key, format, width, height, bytes, checksum, created_at
from card_assets
where job_id = $1::uuid
order by created_at asc;
`
